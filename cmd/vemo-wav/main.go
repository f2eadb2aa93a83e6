// SPDX-License-Identifier: EPL-2.0

// Command vemo-wav converts an audio file to canonical 16-bit PCM WAV and can
// send the result to an inference service for an emotion prediction.
//
//	vemo-wav [-rate 16000] [-mono] [-base64] input.{wav|mp3|ogg|aiff} [output]
//	vemo-wav -predict http://localhost:5000 -user alice input.mp3
package main

import (
	"context"
	"encoding/base64"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/ik5/vemo"
	"github.com/ik5/vemo/formats"
	"github.com/ik5/vemo/internal/inference"
)

type options struct {
	rate       int
	mono       bool
	b64        bool
	predictURL string
	userID     string
	timeout    time.Duration
}

var errUsage = errors.New("usage: vemo-wav [flags] <input> [output]")

func main() {
	var opts options

	flag.IntVar(&opts.rate, "rate", 0, "Resample to this rate in Hz (0 keeps the input rate).")
	flag.BoolVar(&opts.mono, "mono", false, "Average all channels into one.")
	flag.BoolVar(&opts.b64, "base64", false, "Write the WAV file base64 encoded.")
	flag.StringVar(&opts.predictURL, "predict", "", "Inference service URL; prints the predicted emotion instead of writing a file.")
	flag.StringVar(&opts.userID, "user", "", "User ID sent along with -predict.")
	flag.DurationVar(&opts.timeout, "timeout", inference.DefaultTimeout, "Timeout for -predict.")
	flag.Parse()

	if err := run(context.Background(), opts, flag.Args(), os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if errors.Is(err, errUsage) {
			flag.PrintDefaults()
			os.Exit(2)
		}
		os.Exit(1)
	}
}

// run converts args[0] and writes to args[1], or to stdout when no output
// path is given.
func run(ctx context.Context, opts options, args []string, stdout io.Writer) error {
	if len(args) < 1 || len(args) > 2 {
		return errUsage
	}
	inPath := args[0]

	dec, format, err := formats.NewRegistry().Lookup(inPath, "")
	if err != nil {
		return fmt.Errorf("%s: %w", inPath, err)
	}

	inFile, err := os.Open(inPath)
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	defer inFile.Close()

	src, err := dec.Decode(inFile)
	if err != nil {
		return fmt.Errorf("decoding %s as %s: %w", inPath, format, err)
	}
	defer src.Close()

	data, err := vemo.Convert(src, vemo.Options{TargetRate: opts.rate, Mono: opts.mono})
	if err != nil {
		return fmt.Errorf("converting %s: %w", inPath, err)
	}

	if opts.predictURL != "" {
		return predict(ctx, opts, data, stdout)
	}

	if opts.b64 {
		data = []byte(base64.StdEncoding.EncodeToString(data))
	}

	if len(args) == 1 {
		_, err := stdout.Write(data)
		return err
	}

	if err := os.WriteFile(args[1], data, 0o644); err != nil {
		return fmt.Errorf("%w", err)
	}
	fmt.Fprintln(stdout, "Wrote:", args[1])

	return nil
}

func predict(ctx context.Context, opts options, wav []byte, stdout io.Writer) error {
	client := inference.New(opts.predictURL, inference.Options{Timeout: opts.timeout})

	p, err := client.Predict(ctx, opts.userID, wav)
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	fmt.Fprintf(stdout, "emotion: %s (%.1f%%)\n", p.Emotion, p.Confidence*100)
	if p.MentalHealth.Suggestion != "" {
		fmt.Fprintf(stdout, "%s, %s: %s\n", p.MentalHealth.Status, p.MentalHealth.Severity, p.MentalHealth.Suggestion)
	}

	return nil
}
