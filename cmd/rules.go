package main

import (
	"context"
	"fmt"

	"github.com/binarakost/kostctl/internal/api"
	"github.com/binarakost/kostctl/internal/formatter"
	"github.com/binarakost/kostctl/internal/shared"
	"github.com/urfave/cli/v3"
)

func rulePayload(cmd *cli.Command) (api.RulePayload, error) {
	payload := api.RulePayload{
		Title:       cmd.String("title"),
		Description: cmd.String("description"),
	}
	if payload.Title == "" {
		return payload, fmt.Errorf("%w: --title is required", shared.ErrValidation)
	}
	return payload, nil
}

// RulesList prints one page of house rules.
func (r *Runner) RulesList(ctx context.Context, cmd *cli.Command) error {
	page, err := r.admin.Rules(ctx, cmd.Int("page"), cmd.Int("page-size"))
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(page, cmd.Bool("pretty"))
	}

	return r.writeTable(formatter.RulesTable(page.Items), page.Page, page.PageSize, page.Total)
}

// RuleCreate creates a house rule from flags.
func (r *Runner) RuleCreate(ctx context.Context, cmd *cli.Command) error {
	payload, err := rulePayload(cmd)
	if err != nil {
		return err
	}

	if err := r.admin.CreateRule(ctx, payload); err != nil {
		return err
	}

	return r.writePlain("✓ Rule %q created\n", payload.Title)
}

// RuleUpdate replaces a house rule.
func (r *Runner) RuleUpdate(ctx context.Context, cmd *cli.Command) error {
	payload, err := rulePayload(cmd)
	if err != nil {
		return err
	}

	id := cmd.Int64("id")
	if err := r.admin.UpdateRule(ctx, id, payload); err != nil {
		return err
	}

	return r.writePlain("✓ Rule %d updated\n", id)
}

// RuleDelete deletes a house rule after confirmation.
func (r *Runner) RuleDelete(ctx context.Context, cmd *cli.Command) error {
	id := cmd.Int64("id")

	if !cmd.Bool("yes") && !r.confirm("Delete rule %d?", id) {
		return r.writePlain("Aborted\n")
	}

	if err := r.admin.DeleteRule(ctx, id); err != nil {
		return err
	}

	return r.writePlain("✓ Rule %d deleted\n", id)
}
