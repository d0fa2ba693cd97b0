package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/lol-stats/internal/app"
	"github.com/riskibarqy/lol-stats/internal/domain/matchstats"
	"github.com/riskibarqy/lol-stats/internal/usecase"
	"github.com/spf13/cobra"
)

func parseKind(raw string) (matchstats.Kind, error) {
	kind, err := matchstats.ParseKind(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %w", usecase.ErrInvalidInput, err)
	}
	return kind, nil
}

func (r *runner) statsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stats <player|team|champion> <name>",
		Short: "Aggregate one entity's games in the window",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.withServices(cmd, func(ctx context.Context, svc app.Services) error {
				kind, err := parseKind(args[0])
				if err != nil {
					return err
				}
				f, err := r.filter()
				if err != nil {
					return err
				}
				summary, found, err := svc.Entity.Aggregate(ctx, kind, args[1], f)
				if err != nil {
					return err
				}
				if r.opts.JSON {
					return writeJSON(cmd.OutOrStdout(), statsOutput{Kind: kind, Name: args[1], Found: found, Summary: summary})
				}
				if !found {
					fmt.Fprintf(cmd.OutOrStdout(), "No games for %s %q between %s and %s.\n", kind, args[1], f.Start, f.End)
					return nil
				}
				printSummary(cmd.OutOrStdout(), args[1], summary)
				return nil
			})
		},
	}
}

func (r *runner) historyCommand() *cobra.Command {
	var in historyFlags
	cmd := &cobra.Command{
		Use:   "history <player|team|champion> <name>",
		Short: "List recent games with the lane or team opponent",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := r.validateStruct(&in); err != nil {
				return err
			}
			return r.withServices(cmd, func(ctx context.Context, svc app.Services) error {
				kind, err := parseKind(args[0])
				if err != nil {
					return err
				}
				f, err := r.filter()
				if err != nil {
					return err
				}
				items, err := svc.MatchHistory.History(ctx, kind, args[1], f, in.Limit)
				if err != nil {
					return err
				}
				if r.opts.JSON {
					return writeJSON(cmd.OutOrStdout(), items)
				}
				if len(items) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No games in the window.")
					return nil
				}
				printHistory(cmd.OutOrStdout(), kind, items)
				return nil
			})
		},
	}
	cmd.Flags().IntVar(&in.Limit, "limit", matchstats.DefaultHistoryLimit, "max games to list (0 uses the default)")
	return cmd
}

type historyFlags struct {
	Limit int `flag:"limit" validate:"gte=0,lte=200"`
}

func (r *runner) poolCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "pool <player|team> <name>",
		Short: "Champion pool of a player or team",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.withServices(cmd, func(ctx context.Context, svc app.Services) error {
				kind, err := parseKind(args[0])
				if err != nil {
					return err
				}
				f, err := r.filter()
				if err != nil {
					return err
				}
				items, err := svc.Entity.ChampionPool(ctx, kind, args[1], f)
				if err != nil {
					return err
				}
				if r.opts.JSON {
					return writeJSON(cmd.OutOrStdout(), items)
				}
				if len(items) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No champions in the window.")
					return nil
				}
				printChampionPool(cmd.OutOrStdout(), items)
				return nil
			})
		},
	}
}

func (r *runner) patchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "patch",
		Short: "Champion games and win rate per position for the --patch set",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.withServices(cmd, func(ctx context.Context, svc app.Services) error {
				f, err := r.filter()
				if err != nil {
					return err
				}
				items, err := svc.Entity.PatchChampions(ctx, f)
				if err != nil {
					return err
				}
				if r.opts.JSON {
					return writeJSON(cmd.OutOrStdout(), items)
				}
				if len(items) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No champions in the window.")
					return nil
				}
				printPatchChampions(cmd.OutOrStdout(), items)
				return nil
			})
		},
	}
}

func (r *runner) correlateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "correlate <allies|best-against|worst-against> <player|team|champion> <anchor>...",
		Short: "Rank entities seen with or against a set of anchors",
		Long: "Rank the entities that played on the anchors' side (allies) or the opposing side " +
			"(best-against, worst-against) in games where every anchor played together.",
		Args: cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.withServices(cmd, func(ctx context.Context, svc app.Services) error {
				kind, err := parseKind(args[1])
				if err != nil {
					return err
				}
				f, err := r.filter()
				if err != nil {
					return err
				}
				policy := matchstats.Policy(strings.ToLower(strings.TrimSpace(args[0])))
				items, err := svc.Correlation.Correlate(ctx, policy, kind, args[2:], f)
				if err != nil {
					return err
				}
				if r.opts.JSON {
					return writeJSON(cmd.OutOrStdout(), items)
				}
				if len(items) == 0 {
					fmt.Fprintf(cmd.OutOrStdout(), "No %s with at least %d games.\n", kind, matchstats.MinCorrelationGames)
					return nil
				}
				printCorrelations(cmd.OutOrStdout(), policy, items)
				return nil
			})
		},
	}
}

func (r *runner) headToHeadCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "h2h <player|team|champion> <entity1> <entity2>",
		Short: "Compare two entities and list the games they met in",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.withServices(cmd, func(ctx context.Context, svc app.Services) error {
				kind, err := parseKind(args[0])
				if err != nil {
					return err
				}
				f, err := r.filter()
				if err != nil {
					return err
				}
				cmp, err := svc.HeadToHead.Compare(ctx, kind, args[1], args[2], f)
				if err != nil {
					return err
				}
				if r.opts.JSON {
					return writeJSON(cmd.OutOrStdout(), cmp)
				}
				printHeadToHead(cmd.OutOrStdout(), cmp)
				return nil
			})
		},
	}
}

func (r *runner) catalogCommand() *cobra.Command {
	var league string
	cmd := &cobra.Command{
		Use:       "catalog <leagues|patches|dates|player|team|champion>",
		Short:     "List the distinct values stored in the matches table",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"leagues", "patches", "dates", "player", "team", "champion"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.withServices(cmd, func(ctx context.Context, svc app.Services) error {
				out := cmd.OutOrStdout()
				switch what := strings.ToLower(strings.TrimSpace(args[0])); what {
				case "leagues":
					items, err := svc.Catalog.Leagues(ctx)
					if err != nil {
						return err
					}
					if r.opts.JSON {
						return writeJSON(out, nonNil(items))
					}
					printList(out, "league", items)
				case "patches":
					items, err := svc.Catalog.Patches(ctx)
					if err != nil {
						return err
					}
					if r.opts.JSON {
						return writeJSON(out, nonNil(items))
					}
					printList(out, "patch", items)
				case "dates":
					bounds, err := svc.Catalog.DateBounds(ctx)
					if err != nil {
						return err
					}
					if r.opts.JSON {
						return writeJSON(out, bounds)
					}
					printDateBounds(out, bounds)
				default:
					kind, err := parseKind(what)
					if err != nil {
						return err
					}
					items, err := svc.Catalog.Entities(ctx, kind, league)
					if err != nil {
						return err
					}
					if r.opts.JSON {
						return writeJSON(out, nonNil(items))
					}
					printList(out, string(kind), items)
				}
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&league, "in-league", "", "only names seen in this league")
	return cmd
}
