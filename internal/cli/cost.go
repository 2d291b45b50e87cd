package cli

import (
	"github.com/spf13/cobra"

	"github.com/mkravtsov/soundproof-estimator/internal/domain"
	"github.com/mkravtsov/soundproof-estimator/internal/engine"
	"github.com/mkravtsov/soundproof-estimator/internal/logging"
)

var costInput string

type costPayload struct {
	TreatmentKey string                `json:"treatment_key"`
	Dimensions   domain.RoomDimensions `json:"dimensions"`
	Surface      string                `json:"surface"`
	Blockages    []domain.Blockage     `json:"blockages,omitempty"`
}

var costCmd = &cobra.Command{
	Use:   "cost",
	Short: "Price a treatment against room geometry",
	RunE: func(cmd *cobra.Command, args []string) error {
		var payload costPayload
		if err := readInput(costInput, &payload); err != nil {
			exitErr("read input", err)
		}

		log := logging.New()
		eng := buildEngine(log)

		b, err := eng.Cost(payload.TreatmentKey, payload.Dimensions, payload.Surface, payload.Blockages)
		if err != nil {
			exitErr("calculate cost", err)
		}
		return printJSON(engine.RoundBreakdown(b))
	},
}

func init() {
	costCmd.Flags().StringVarP(&costInput, "input", "i", "-", "Input JSON file, or - for stdin")
	RootCmd.AddCommand(costCmd)
}
