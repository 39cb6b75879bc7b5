package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

var (
	saveFlag    bool
	shuffleSeed int64
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the saved batting order",
	Args:  cobra.NoArgs,
	RunE:  runShow,
}

var shuffleCmd = &cobra.Command{
	Use:   "shuffle",
	Short: "Randomize the batting order",
	Args:  cobra.NoArgs,
	RunE:  runShuffle,
}

var moveCmd = &cobra.Command{
	Use:   "move <position> up|down",
	Short: "Swap a player with the one above or below",
	Example: `  lineup move 3 up --save
  lineup move 1 down`,
	Args: cobra.ExactArgs(2),
	RunE: runMove,
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Erase the saved order and go back to the default",
	Args:  cobra.NoArgs,
	RunE:  runReset,
}

func init() {
	shuffleCmd.Flags().BoolVar(&saveFlag, "save", false, "save the result")
	shuffleCmd.Flags().Int64Var(&shuffleSeed, "seed", 0, "shuffle seed; 0 uses the clock")
	moveCmd.Flags().BoolVar(&saveFlag, "save", false, "save the result")
}

func runShow(cmd *cobra.Command, args []string) error {
	s, err := openSession(cmd.Context(), 0)
	if err != nil {
		return err
	}
	defer s.Close()

	fmt.Fprintf(cmd.OutOrStdout(), "source: %s (key %s)\n", s.manager.Source(), s.manager.Key())
	printOrder(cmd, s.manager)
	return nil
}

func runShuffle(cmd *cobra.Command, args []string) error {
	s, err := openSession(cmd.Context(), shuffleSeed)
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.manager.Shuffle(); err != nil {
		return err
	}
	printOrder(cmd, s.manager)
	return maybeSave(cmd, s)
}

func runMove(cmd *cobra.Command, args []string) error {
	pos, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("position %q is not a number", args[0])
	}
	dir := strings.ToLower(args[1])
	if dir != "up" && dir != "down" {
		return fmt.Errorf("direction must be up or down, got %q", args[1])
	}

	s, err := openSession(cmd.Context(), 0)
	if err != nil {
		return err
	}
	defer s.Close()

	idx := pos - 1
	var moved bool
	if dir == "up" {
		moved = s.manager.MoveUp(idx)
	} else {
		moved = s.manager.MoveDown(idx)
	}
	if !moved {
		fmt.Fprintf(cmd.OutOrStdout(), "position %d cannot move %s; order unchanged\n", pos, dir)
	}
	printOrder(cmd, s.manager)
	if !moved {
		return nil
	}
	return maybeSave(cmd, s)
}

func runReset(cmd *cobra.Command, args []string) error {
	s, err := openSession(cmd.Context(), 0)
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.manager.Discard(cmd.Context()); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Order Reset")
	printOrder(cmd, s.manager)
	return nil
}

func maybeSave(cmd *cobra.Command, s *session) error {
	if !saveFlag {
		fmt.Fprintln(cmd.OutOrStdout(), "not saved (use --save)")
		return nil
	}
	if err := s.manager.Save(cmd.Context()); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Layout Saved")
	return nil
}
