package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"jsindent/internal/trace"
)

func addTraceFlags(fs *pflag.FlagSet) {
	fs.String("trace", "", "trace output file (- for stderr)")
	fs.String("trace-level", "off", "deepest traced scope (off|run|file|line|stack)")
	fs.String("trace-mode", "stream", "trace storage (stream|ring|both)")
	fs.Int("trace-ring-size", 4096, "events kept in ring mode")
	fs.Duration("trace-heartbeat", 0, "emit heartbeat events at this interval (0 = off)")
}

type traceFlags struct {
	output    string
	level     trace.Level
	mode      trace.StorageMode
	ringSize  int
	heartbeat time.Duration
}

func readTraceFlags(cmd *cobra.Command) (traceFlags, error) {
	pf := cmd.Root().PersistentFlags()
	var tf traceFlags
	var err error
	if tf.output, err = pf.GetString("trace"); err != nil {
		return tf, fmt.Errorf("failed to get trace flag: %w", err)
	}
	levelStr, err := pf.GetString("trace-level")
	if err != nil {
		return tf, fmt.Errorf("failed to get trace-level flag: %w", err)
	}
	if tf.level, err = trace.ParseLevel(levelStr); err != nil {
		return tf, fmt.Errorf("invalid trace level: %w", err)
	}
	modeStr, err := pf.GetString("trace-mode")
	if err != nil {
		return tf, fmt.Errorf("failed to get trace-mode flag: %w", err)
	}
	if tf.mode, err = trace.ParseMode(modeStr); err != nil {
		return tf, fmt.Errorf("invalid trace mode: %w", err)
	}
	if tf.ringSize, err = pf.GetInt("trace-ring-size"); err != nil {
		return tf, fmt.Errorf("failed to get trace-ring-size flag: %w", err)
	}
	if tf.heartbeat, err = pf.GetDuration("trace-heartbeat"); err != nil {
		return tf, fmt.Errorf("failed to get trace-heartbeat flag: %w", err)
	}
	// --trace без уровня пишет команды и файлы
	if tf.output != "" && tf.level == trace.LevelOff {
		tf.level = trace.LevelFile
	}
	return tf, nil
}

// setupTracing attaches a tracer built from the trace flags to the command
// context. The returned cleanup takes the command error: in ring mode the
// buffered events are dumped only when the command failed.
func setupTracing(cmd *cobra.Command) (trace.Tracer, func(error), error) {
	tf, err := readTraceFlags(cmd)
	if err != nil {
		return nil, nil, err
	}
	if tf.level == trace.LevelOff {
		cmd.SetContext(trace.WithTracer(cmd.Context(), trace.Nop))
		return trace.Nop, func(error) {}, nil
	}

	tracer, err := trace.New(trace.Config{
		Level:      tf.level,
		Mode:       tf.mode,
		OutputPath: tf.output,
		RingSize:   tf.ringSize,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create tracer: %w", err)
	}
	cmd.SetContext(trace.WithTracer(cmd.Context(), tracer))
	heartbeat := trace.StartHeartbeat(tracer, tf.heartbeat)

	errOut := cmd.ErrOrStderr()
	cleanup := func(runErr error) {
		heartbeat.Stop()
		// в режиме both события уже записаны потоком
		if ring := trace.Ring(tracer); ring != nil && tf.mode == trace.ModeRing && runErr != nil {
			if dumpErr := dumpRing(ring, tf.output); dumpErr != nil {
				fmt.Fprintf(errOut, "trace: dump error: %v\n", dumpErr)
			}
		}
		if err := tracer.Flush(); err != nil {
			fmt.Fprintf(errOut, "trace: flush error: %v\n", err)
		}
		if err := tracer.Close(); err != nil {
			fmt.Fprintf(errOut, "trace: close error: %v\n", err)
		}
	}
	return tracer, cleanup, nil
}

func dumpRing(ring *trace.RingTracer, output string) error {
	if output == "" || output == "-" {
		return ring.Dump(os.Stderr, trace.FormatText)
	}
	f, err := os.Create(output)
	if err != nil {
		return err
	}
	if err := ring.Dump(f, trace.FormatForPath(trace.FormatAuto, output)); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
