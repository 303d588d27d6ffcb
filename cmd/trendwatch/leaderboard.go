package main

import (
	"fmt"
	"path/filepath"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/fwojciec/trendwatch"
)

// Run executes the leaderboard command.
func (c *LeaderboardCmd) Run(deps *Dependencies) error {
	fmt.Fprintln(deps.Stderr, "Fetching LiveBench judgments...")

	board, err := deps.Leaderboard.GenerateLeaderboard(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", trendwatch.ErrorMessage(err))
		return err
	}

	tw := table.NewWriter()
	tw.SetOutputMirror(deps.Stdout)
	tw.AppendHeader(table.Row{"#", "Model", "Score", "Questions"})
	for i, model := range board.Models {
		tw.AppendRow(table.Row{i + 1, model.Model, fmt.Sprintf("%.1f%%", model.AvgScore*100), model.Questions})
	}
	tw.Render()

	fmt.Fprintf(deps.Stdout, "\nJudgments analyzed: %d\n", board.Rows)
	fmt.Fprintf(deps.Stdout, "Dataset last updated: %s\n", board.LastModified)
	fmt.Fprintf(deps.Stdout, "Page written to %s\n", filepath.Join(deps.Config.DataDir, board.Filename))
	return nil
}
