package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/godbound-api/internal/handlers/sheet/v1alpha1"
)

var (
	subjectType string
	level       int
	attributes  map[string]int
	effort      int
	hp          int
	hitDice     int
	morale      int
)

var createSubjectCmd = &cobra.Command{
	Use:   "create-subject [user-id] [name]",
	Short: "Create a character or npc sheet",
	Long: `Create a sheet. Attributes left out start at 10. Example:

  create-subject user-1 "Ashen Duke" --attr strength=14 --attr wisdom=16 --effort 2`,
	Args: cobra.ExactArgs(2),
	RunE: createSubject,
}

var getSubjectCmd = &cobra.Command{
	Use:   "get-subject [subject-id]",
	Short: "Show a sheet",
	Args:  cobra.ExactArgs(1),
	RunE:  getSubject,
}

var renderCmd = &cobra.Command{
	Use:   "render [user-id] [subject-id]",
	Short: "Show the sheet view model",
	Args:  cobra.ExactArgs(2),
	RunE:  renderSheet,
}

func init() {
	createSubjectCmd.Flags().StringVar(&subjectType, "type", "character", "character or npc")
	createSubjectCmd.Flags().IntVar(&level, "level", 1, "level")
	createSubjectCmd.Flags().StringToIntVar(&attributes, "attr", nil, "attribute scores, name=score")
	createSubjectCmd.Flags().IntVar(&effort, "effort", 0, "total effort")
	createSubjectCmd.Flags().IntVar(&hp, "hp", 0, "maximum hit points")
	createSubjectCmd.Flags().IntVar(&hitDice, "hd", 0, "hit dice")
	createSubjectCmd.Flags().IntVar(&morale, "morale", 0, "morale score for npcs")
}

func createSubject(_ *cobra.Command, args []string) error {
	client, cleanup, err := createSheetClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.CreateSubject(ctx, &v1alpha1.CreateSubjectRequest{
		UserID:     args[0],
		Name:       args[1],
		Type:       subjectType,
		Level:      level,
		Attributes: attributes,
		Effort:     effort,
		HP:         hp,
		HitDice:    hitDice,
		Morale:     morale,
	})
	if err != nil {
		return fmt.Errorf("failed to create subject: %w", err)
	}

	fmt.Printf("Created %s (ID: %s)\n", resp.Subject.Name, resp.Subject.ID)
	return printJSON(resp.Subject)
}

func getSubject(_ *cobra.Command, args []string) error {
	client, cleanup, err := createSheetClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.GetSubject(ctx, &v1alpha1.GetSubjectRequest{SubjectID: args[0]})
	if err != nil {
		return fmt.Errorf("failed to get subject: %w", err)
	}

	return printJSON(resp.Subject)
}

func renderSheet(_ *cobra.Command, args []string) error {
	client, cleanup, err := createSheetClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.RenderSheet(ctx, &v1alpha1.RenderSheetRequest{
		UserID:    args[0],
		SubjectID: args[1],
	})
	if err != nil {
		return fmt.Errorf("failed to render sheet: %w", err)
	}

	fmt.Printf("Template: %s\n\n", resp.View.Template)
	for _, a := range resp.View.Attributes {
		fmt.Printf("  %-13s %2d (%+d)  check target %d\n", a.Label, a.Score, a.Modifier, a.Target)
	}
	fmt.Println()
	for _, sv := range resp.View.Saves {
		fmt.Printf("  %-13s %d\n", sv.Label, sv.Target)
	}
	fmt.Printf("\nEffort %d/%d  HP %d/%d  HD %d/%d\n",
		resp.View.Effort.Available, resp.View.Effort.Total,
		resp.View.HP.Value, resp.View.HP.Max,
		resp.View.HitDice.Value, resp.View.HitDice.Max)
	return nil
}
