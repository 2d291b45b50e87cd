package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/mkravtsov/soundproof-estimator/internal/engine"
	"github.com/mkravtsov/soundproof-estimator/internal/logging"
)

var recommendInput string

type recommendPayload struct {
	Noise engine.RawNoiseInput `json:"noise"`
	Room  engine.RoomContext   `json:"room"`
}

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Recommend a treatment per exposed surface",
	Long:  "Reads a JSON payload with a noise profile and room context from a file or stdin and prints the scored recommendation.",
	RunE: func(cmd *cobra.Command, args []string) error {
		var payload recommendPayload
		if err := readInput(recommendInput, &payload); err != nil {
			exitErr("read input", err)
		}

		log := logging.New()
		eng := buildEngine(log)

		profile, err := engine.NormalizeProfile(payload.Noise)
		if err != nil {
			exitErr("normalize noise profile", err)
		}

		rec := eng.Recommend(profile, payload.Room)
		return printJSON(rec)
	},
}

func init() {
	recommendCmd.Flags().StringVarP(&recommendInput, "input", "i", "-", "Input JSON file, or - for stdin")
	RootCmd.AddCommand(recommendCmd)
}

func readInput(path string, v any) error {
	var r io.Reader = os.Stdin
	if path != "" && path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}
	return json.NewDecoder(r).Decode(v)
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	return nil
}
