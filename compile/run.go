// Package compile implements the compile subcommand.
package compile

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"sassc/common"
	"sassc/sass"
	"sassc/state"
)

func Run(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("compile")

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return errors.New("no input source has been specified")
	}
	if src, err = filepath.Abs(src); err != nil {
		return err
	}

	dst := cmd.Args().Get(1)
	if len(dst) > 0 {
		if dst, err = filepath.Abs(dst); err != nil {
			return err
		}
	}
	if cmd.Args().Len() > 2 {
		log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}

	// configuration was validated on load, flags may override it
	env.Style, _ = env.Cfg.Compiler.OutputStyle()
	if cmd.IsSet("style") {
		style, err := common.ParseOutputStyle(cmd.String("style"))
		if err != nil {
			log.Warn("Unknown output style requested, using configured style", zap.Error(err))
		} else {
			env.Style = style
		}
	}
	env.Precision = env.Cfg.Compiler.Precision
	if cmd.IsSet("precision") {
		if p := int(cmd.Int("precision")); p >= 0 {
			env.Precision = p
		} else {
			log.Warn("Negative precision requested, using configured precision", zap.Int("requested", p))
		}
	}

	data, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("unable to read input '%s': %w", src, err)
	}

	start := time.Now()
	css, err := sass.NewCompiler(env.Style, env.Precision, env.Log).CompileString(string(data))
	if err != nil {
		return fmt.Errorf("unable to compile '%s': %w", src, err)
	}
	log.Info("Compiled stylesheet",
		zap.String("source", src),
		zap.Stringer("style", env.Style),
		zap.Int("precision", env.Precision),
		zap.Duration("elapsed", time.Since(start)))

	out := os.Stdout
	if len(dst) > 0 {
		if out, err = os.Create(dst); err != nil {
			return fmt.Errorf("unable to create destination file '%s': %w", dst, err)
		}
		defer out.Close()
	}
	if _, err = io.WriteString(out, css); err != nil {
		return fmt.Errorf("unable to write output: %w", err)
	}
	return nil
}
