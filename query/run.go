package query

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/vegasq/mdata/engine"
)

// inputTable is the name the input is registered under.
const inputTable = "input"

// Run reads req.Input, applies the requested filter, limit and sort, and
// writes the result to req.Output. The output path gets an extension for
// the output format when it has none.
//
// Run logs through the zerolog logger attached to ctx.
func Run(ctx context.Context, req Request) error {
	logger := zerolog.Ctx(ctx)

	if !utf8.ValidString(req.Input) {
		return &Error{Kind: KindPathEncoding, Path: req.Input}
	}

	inputFormat := InferFormat(req.Input)
	logger.Debug().Str("path", req.Input).Stringer("format", inputFormat).Msg("resolved input format")

	sess := engine.NewSession()
	if err := register(ctx, sess, inputFormat, req); err != nil {
		return err
	}
	logger.Trace().Str("table", inputTable).Msg("input registered")

	df, err := sess.Table(inputTable)
	if err != nil {
		return fmt.Errorf("register input: %w", err)
	}

	schema := df.Schema()
	if req.ShowSchema {
		logger.Info().Msgf("# Schema\n%s", schema)
	} else {
		logger.Trace().Strs("columns", schema.Names()).Msg("input schema")
	}

	df, err = BuildPlan(df, req)
	if err != nil {
		return err
	}
	logger.Trace().Msgf("plan\n%s", df)

	outputFormat := ResolveOutputFormat(req.Format, inputFormat)
	if !utf8.ValidString(req.Output) {
		return &Error{Kind: KindPathEncoding, Path: req.Output}
	}
	outputPath := EnsureExtension(req.Output, outputFormat)
	logger.Debug().Str("path", outputPath).Stringer("format", outputFormat).Msg("resolved output")

	switch outputFormat {
	case CSV:
		err = df.WriteCSV(ctx, outputPath)
	case Parquet:
		err = df.WriteParquet(ctx, outputPath)
	case Undefined:
		return &Error{Kind: KindOutputFormat, Format: req.Format}
	default:
		panic(fmt.Sprintf("query: unknown format %d", int(outputFormat)))
	}
	if err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	logger.Debug().Str("path", outputPath).Msg("output written")
	return nil
}

func register(ctx context.Context, sess *engine.Session, f Format, req Request) error {
	var err error
	switch f {
	case CSV:
		err = sess.RegisterCSV(ctx, inputTable, req.Input, req.CSV)
	case Parquet:
		err = sess.RegisterParquet(ctx, inputTable, req.Input)
	case Undefined:
		return &Error{Kind: KindInputFormat, Path: req.Input}
	default:
		panic(fmt.Sprintf("query: unknown format %d", int(f)))
	}
	if err != nil {
		return fmt.Errorf("register input: %w", err)
	}
	return nil
}
