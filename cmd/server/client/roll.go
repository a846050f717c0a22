package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/godbound-api/internal/engine/check"
	"github.com/KirkDiggler/godbound-api/internal/handlers/sheet/v1alpha1"
)

var (
	difficulty int
	auxiliary  int
	params     map[string]string
)

var rollCheckCmd = &cobra.Command{
	Use:   "roll-check [user-id] [subject-id] [attribute]",
	Short: "Roll an attribute check",
	Long: `Roll 1d20 plus modifiers against 21 minus the attribute score. Examples:

  roll-check user-1 subject-1 strength
  roll-check user-1 subject-1 wisdom --difficulty -4 --aux 1`,
	Args: cobra.ExactArgs(3),
	RunE: rollCheck,
}

var rollSaveCmd = &cobra.Command{
	Use:   "roll-save [user-id] [subject-id] [save]",
	Short: "Roll a saving throw",
	Args:  cobra.ExactArgs(3),
	RunE:  rollSave,
}

var dispatchCmd = &cobra.Command{
	Use:   "dispatch [user-id] [subject-id] [intent]",
	Short: "Send a sheet intent",
	Long: `Send a raw sheet intent with its parameters. Examples:

  dispatch user-1 subject-1 spend-effort --param category=scene --param change=1
  dispatch user-1 subject-1 apply-damage --param amount=3
  dispatch user-1 subject-1 choose-tactic`,
	Args: cobra.ExactArgs(3),
	RunE: dispatch,
}

func init() {
	for _, cmd := range []*cobra.Command{rollCheckCmd, rollSaveCmd} {
		cmd.Flags().IntVar(&difficulty, "difficulty", 0, "difficulty modifier (-8 very hard, -4 hard, +4 easy)")
	}
	rollCheckCmd.Flags().IntVar(&auxiliary, "aux", 0, "auxiliary modifier")
	dispatchCmd.Flags().StringToStringVar(&params, "param", nil, "intent parameter, name=value")
}

func rollCheck(_ *cobra.Command, args []string) error {
	client, cleanup, err := createSheetClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.ResolveAttributeCheck(ctx, &v1alpha1.ResolveAttributeCheckRequest{
		UserID:             args[0],
		SubjectID:          args[1],
		Attribute:          args[2],
		DifficultyModifier: difficulty,
		AuxiliaryModifier:  auxiliary,
	})
	if err != nil {
		return fmt.Errorf("failed to roll check: %w", err)
	}

	printResult(resp.Result)
	return nil
}

func rollSave(_ *cobra.Command, args []string) error {
	client, cleanup, err := createSheetClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.ResolveSavingThrow(ctx, &v1alpha1.ResolveSavingThrowRequest{
		UserID:             args[0],
		SubjectID:          args[1],
		Save:               args[2],
		DifficultyModifier: difficulty,
	})
	if err != nil {
		return fmt.Errorf("failed to roll save: %w", err)
	}

	printResult(resp.Result)
	return nil
}

func dispatch(_ *cobra.Command, args []string) error {
	client, cleanup, err := createSheetClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.Dispatch(ctx, &v1alpha1.DispatchRequest{
		UserID:    args[0],
		SubjectID: args[1],
		Intent:    args[2],
		Params:    params,
	})
	if err != nil {
		return fmt.Errorf("failed to dispatch %s: %w", args[2], err)
	}

	return printJSON(resp.Result)
}

func printResult(r *check.Result) {
	outcome := "FAILURE"
	if r.Succeeded {
		outcome = "SUCCESS"
	}

	fmt.Printf("%s (%s)\n", r.Category, r.DifficultyLabel)
	fmt.Printf("  Roll:   %d\n", r.Natural)
	fmt.Printf("  Total:  %d\n", r.Total)
	fmt.Printf("  Target: %d\n", r.Target)
	fmt.Printf("  %s\n", outcome)
}
