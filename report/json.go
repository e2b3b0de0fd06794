package report

import (
	"fmt"
	"os"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/lehigh-university-libraries/bibtidy/pipeline"
)

// Summary builds a JSON-compatible run summary.
func Summary(res *pipeline.Result, input, output string) (*structpb.Struct, error) {
	passes := make([]any, 0, len(res.Passes))
	for _, pr := range res.Passes {
		passes = append(passes, map[string]any{
			"name":  string(pr.Name),
			"count": pr.Count,
		})
	}

	s, err := structpb.NewStruct(map[string]any{
		"input":             input,
		"output":            output,
		"mode":              res.Mode.String(),
		"passes":            passes,
		"input_bytes":       res.InputBytes,
		"output_bytes":      res.OutputBytes,
		"reduction_bytes":   res.Reduction(),
		"reduction_percent": res.ReductionPercent(),
	})
	if err != nil {
		return nil, fmt.Errorf("building report: %w", err)
	}
	return s, nil
}

// MarshalJSON renders a run summary as indented JSON.
func MarshalJSON(res *pipeline.Result, input, output string) ([]byte, error) {
	s, err := Summary(res, input, output)
	if err != nil {
		return nil, err
	}
	data, err := protojson.MarshalOptions{Multiline: true, Indent: "  "}.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("encoding report: %w", err)
	}
	return append(data, '\n'), nil
}

// WriteJSON writes a run summary to path.
func WriteJSON(path string, res *pipeline.Result, input, output string) error {
	data, err := MarshalJSON(res, input, output)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}
