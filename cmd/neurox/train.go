package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/neurox-ml/neurox/data"
	"github.com/neurox-ml/neurox/model"
	"github.com/neurox-ml/neurox/nn"
	"github.com/neurox-ml/neurox/optim"
)

// trainFlags are shared by the xor and train commands.
type trainFlags struct {
	optimizer  string
	activation string
	epochs     int
	batch      int
	lr         float64
	seed       uint64
	verbose    bool
}

func (f *trainFlags) register(fs *flag.FlagSet, epochs, batch int, lr float64) {
	fs.StringVar(&f.optimizer, "optimizer", "sgd", "Optimizer: sgd or adam")
	fs.StringVar(&f.activation, "activation", "relu", "Activation for every layer: identity, relu, sigmoid, tanh")
	fs.IntVar(&f.epochs, "epochs", epochs, "Number of training epochs")
	fs.IntVar(&f.batch, "batch", batch, "Batch size")
	fs.Float64Var(&f.lr, "lr", lr, "Learning rate")
	fs.Uint64Var(&f.seed, "seed", 42, "Seed for parameter initialization")
	fs.BoolVar(&f.verbose, "v", false, "Log loss after every epoch")
}

func (f *trainFlags) newModel(widths []int) (*model.Model, error) {
	act, err := nn.ParseActivation(f.activation)
	if err != nil {
		return nil, err
	}

	opts := []model.Option{model.WithSeed(f.seed)}
	if f.verbose {
		handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
		opts = append(opts, model.WithLogger(slog.New(handler)))
	}
	return model.New(widths, act, opts...)
}

func (f *trainFlags) newOptimizer(m *model.Model) (optim.Optimizer, error) {
	switch strings.ToLower(f.optimizer) {
	case "sgd":
		return optim.NewSGD(optim.SGDConfig{LR: float32(f.lr)}), nil
	case "adam":
		return optim.NewAdam(m.Layers(), optim.AdamConfig{LR: float32(f.lr)}), nil
	default:
		return nil, fmt.Errorf("unknown optimizer %q (want sgd or adam)", f.optimizer)
	}
}

func runXOR(args []string) error {
	fs := flag.NewFlagSet("xor", flag.ContinueOnError)
	var tf trainFlags
	tf.register(fs, 600, 4, 0.1)
	hidden := fs.Int("hidden", 6, "Hidden layer width")
	if err := fs.Parse(args); err != nil {
		return err
	}

	x, y := data.XOR()
	m, err := tf.newModel([]int{2, *hidden, 2})
	if err != nil {
		return err
	}
	opt, err := tf.newOptimizer(m)
	if err != nil {
		return err
	}

	fmt.Println("Starting XOR training (small network)...")
	fmt.Print(m.Summary())

	history, err := m.Fit(x, y, opt, model.FitConfig{Epochs: tf.epochs, BatchSize: tf.batch})
	if err != nil {
		return err
	}
	if len(history) > 0 {
		fmt.Printf("Epoch 1 loss: %.6f, epoch %d loss: %.6f\n", history[0], len(history), history[len(history)-1])
	}

	probs, err := m.Probabilities(x)
	if err != nil {
		return err
	}
	for i, class := range probs.ArgMaxRows() {
		fmt.Printf("Sample %d -> class %d (p=%.4f)\n", i, class, probs.At(i, class))
	}

	loss, acc, err := m.Evaluate(x, y)
	if err != nil {
		return err
	}
	fmt.Printf("Final cross-entropy loss: %.6f (accuracy %.0f%%)\n", loss, acc*100)
	return nil
}

func runTrain(args []string) error {
	fs := flag.NewFlagSet("train", flag.ContinueOnError)
	var tf trainFlags
	tf.register(fs, 100, 32, 0.01)
	dataPath := fs.String("data", "", "Headerless CSV with features followed by one class-index column (required)")
	layers := fs.String("layers", "", "Comma-separated widths including input and output, e.g. 4,16,3 (required)")
	ratio := fs.Float64("split", 0.8, "Fraction of rows used for training")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *dataPath == "" || *layers == "" {
		fs.Usage()
		return fmt.Errorf("-data and -layers are required")
	}

	widths, err := parseWidths(*layers)
	if err != nil {
		return err
	}

	grid, err := data.LoadCSV(*dataPath)
	if err != nil {
		return err
	}
	x, labels, err := data.SplitFeaturesLabels(grid, 1)
	if err != nil {
		return err
	}
	y, err := data.LabelsToOneHot(labels, widths[len(widths)-1])
	if err != nil {
		return err
	}

	trainX, testX, err := data.TrainTestSplit(x, float32(*ratio))
	if err != nil {
		return err
	}
	trainY, testY, err := data.TrainTestSplit(y, float32(*ratio))
	if err != nil {
		return err
	}
	fmt.Printf("Loaded %d samples: %d train, %d test\n", x.Rows(), trainX.Rows(), testX.Rows())

	m, err := tf.newModel(widths)
	if err != nil {
		return err
	}
	opt, err := tf.newOptimizer(m)
	if err != nil {
		return err
	}
	fmt.Print(m.Summary())

	history, err := m.Fit(trainX, trainY, opt, model.FitConfig{Epochs: tf.epochs, BatchSize: tf.batch})
	if err != nil {
		return err
	}
	if len(history) > 0 {
		fmt.Printf("Final training loss: %.6f\n", history[len(history)-1])
	}

	if testX.Rows() == 0 {
		fmt.Println("No test rows; skipping evaluation")
		return nil
	}
	loss, acc, err := m.Evaluate(testX, testY)
	if err != nil {
		return err
	}
	fmt.Printf("Test loss: %.6f, accuracy: %.2f%%\n", loss, acc*100)
	return nil
}

// parseWidths parses "4,16,3".
func parseWidths(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	widths := make([]int, 0, len(parts))
	for _, p := range parts {
		w, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("invalid layer width %q: %w", p, err)
		}
		widths = append(widths, w)
	}
	return widths, nil
}
