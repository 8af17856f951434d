package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/zhubert/enigmavision/internal/clipboard"
	"github.com/zhubert/enigmavision/internal/config"
	"github.com/zhubert/enigmavision/internal/enigma"
	"github.com/zhubert/enigmavision/internal/logger"
)

// encryptOptions are the machine overrides accepted by the encrypt command.
// Empty values keep whatever the config file says.
type encryptOptions struct {
	rotors    string
	positions string
	plugs     string
	locks     string
	copy      bool
	verbose   bool
}

var encryptOpts encryptOptions

var encryptCmd = &cobra.Command{
	Use:   "encrypt [text...]",
	Short: "Encipher text without starting the TUI",
	Long: `Enciphers the given text, or standard input when no text is given, and
prints the ciphertext. The machine starts from the config file settings;
flags override individual parts of it.

Enciphering the output again with the same settings gives back the input.`,
	Example: `  enigmavision encrypt HELLO WORLD
  enigmavision encrypt --rotors III,I,II --positions QEV --plugs "AB CD" < msg.txt`,
	RunE: runEncrypt,
}

func init() {
	f := encryptCmd.Flags()
	f.StringVar(&encryptOpts.rotors, "rotors", "", "Rotor types left to right, e.g. I,II,III")
	f.StringVar(&encryptOpts.positions, "positions", "", "Start positions left to right, e.g. AQV")
	f.StringVar(&encryptOpts.plugs, "plugs", "", `Plug pairs, e.g. "AB CD EF" (at most 10)`)
	f.StringVar(&encryptOpts.locks, "locks", "", "Rotors that never step, e.g. left,right")
	f.BoolVar(&encryptOpts.copy, "copy", false, "Also copy the ciphertext to the clipboard")
	f.BoolVarP(&encryptOpts.verbose, "verbose", "v", false, "Mirror debug logging to stderr")
	rootCmd.AddCommand(encryptCmd)
}

func runEncrypt(cmd *cobra.Command, args []string) error {
	if encryptOpts.verbose {
		logger.SetDebug(true)
		stderr := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelDebug})
		if err := logger.Init(logger.DefaultLogPath, stderr); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		}
	}
	defer logger.Close()

	return runEncryptWith(cmd.InOrStdin(), cmd.OutOrStdout(), args, encryptOpts)
}

// runEncryptWith allows injecting input and output for testing
func runEncryptWith(in io.Reader, out io.Writer, args []string, opts encryptOptions) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	mc, err := opts.apply(cfg.MachineConfig())
	if err != nil {
		return err
	}

	text, err := encryptInput(in, args)
	if err != nil {
		return fmt.Errorf("error reading input: %w", err)
	}

	reg := enigma.NewRegistry()
	ciphertext, rotors := enigma.Run(reg, text, mc)
	start := reg.Rotors(mc.Rotors).Positions()
	end := rotors.Positions()
	logger.Info("encrypted",
		"chars", len([]rune(text)),
		"rotors", rotorNames(mc),
		"plugs", enigma.NewPlugboard(mc.Plugs).String(),
		"start", string(start[:]),
		"end", string(end[:]),
	)

	if _, err := fmt.Fprintln(out, ciphertext); err != nil {
		return err
	}

	if opts.copy {
		if err := clipboard.WriteText(ciphertext); err != nil {
			return fmt.Errorf("error copying to clipboard: %w", err)
		}
	}
	return nil
}

// apply overrides the parts of mc named by the options.
func (o encryptOptions) apply(mc enigma.Config) (enigma.Config, error) {
	if o.rotors != "" {
		names := strings.Split(o.rotors, ",")
		if len(names) != len(mc.Rotors) {
			return mc, fmt.Errorf("--rotors wants three types, got %q", o.rotors)
		}
		for i, name := range names {
			t, err := config.ParseRotorType(name)
			if err != nil {
				return mc, err
			}
			mc.Rotors[i].Type = t
		}
	}

	if o.positions != "" {
		pos, err := config.ParsePositions(o.positions)
		if err != nil {
			return mc, err
		}
		for i, p := range pos {
			mc.Rotors[i].Position = p
		}
	}

	if o.plugs != "" {
		pairs, err := config.ParsePlugs(o.plugs)
		if err != nil {
			return mc, err
		}
		mc.Plugs = pairs
	}

	if o.locks != "" {
		locks, err := config.ParseLocks(o.locks)
		if err != nil {
			return mc, err
		}
		mc.Locks = locks
	}
	return mc, nil
}

// encryptInput joins args with spaces, or reads all of in when there are
// none. A single trailing newline from stdin is dropped.
func encryptInput(in io.Reader, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(in)
	if err != nil {
		return "", err
	}
	text := strings.TrimSuffix(string(data), "\n")
	return strings.TrimSuffix(text, "\r"), nil
}

func rotorNames(mc enigma.Config) string {
	names := make([]string, len(mc.Rotors))
	for i, r := range mc.Rotors {
		names[i] = r.Type.String()
	}
	return strings.Join(names, ",")
}
