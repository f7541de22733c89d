package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Idyll-Intelligent-Systems/QuantumTimeTravel/fsm"
	"github.com/Idyll-Intelligent-Systems/QuantumTimeTravel/planner"
	"github.com/Idyll-Intelligent-Systems/QuantumTimeTravel/spec"
)

// errPlanFailed signals a planning failure already reported to the user;
// it only carries the non-zero exit code.
var errPlanFailed = errors.New("plan failed")

// parseEdge splits one "src:dst:weight" argument.
func parseEdge(arg string) (src, dst string, w float64, err error) {
	parts := strings.Split(arg, ":")
	if len(parts) != 3 {
		return "", "", 0, fmt.Errorf("invalid edge spec %q: expected src:dst:weight", arg)
	}
	w, err = strconv.ParseFloat(parts[2], 64)
	if err != nil {
		return "", "", 0, fmt.Errorf("invalid edge spec %q: %w", arg, err)
	}

	return parts[0], parts[1], w, nil
}

// report prints the result as JSON, logs the plan event, and maps the
// outcome to an exit status.
func report(res planner.Result, fields map[string]any) error {
	log := newLogger()
	event := map[string]any{
		"ok":     res.OK,
		"reason": res.Reason,
		"path":   res.Path,
	}
	if res.OK {
		event["cost"] = res.Cost
	}
	for k, v := range fields {
		event[k] = v
	}
	log.Event("plan", event)

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(res)

	if !res.OK {
		return errPlanFailed
	}

	return nil
}

func newPlanCmd() *cobra.Command {
	var (
		states         []string
		initial        string
		edges          []string
		abc            []string
		forbidNegative bool
	)

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Plan A->B->C->A from inline states and weighted edges",
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := fsm.New(states, initial)
			if err != nil {
				return err
			}
			for _, arg := range edges {
				src, dst, w, err := parseEdge(arg)
				if err != nil {
					return err
				}
				if err := f.AddTransition(src, dst, "", w); err != nil {
					return err
				}
			}

			res := planner.PlanCycle(f, abc[0], abc[1], abc[2], forbidNegative)

			return report(res, nil)
		},
	}

	cmd.Flags().StringSliceVar(&states, "states", nil, "state labels, e.g. A,B,C")
	cmd.Flags().StringVar(&initial, "initial", "", "initial state label")
	cmd.Flags().StringSliceVar(&edges, "edges", nil, "edges of form src:dst:weight")
	cmd.Flags().StringSliceVar(&abc, "abc", nil, "the three waypoint labels A,B,C")
	cmd.Flags().BoolVar(&forbidNegative, "forbid-negative-edges", false, "drop negative-weight edges before planning")
	_ = cmd.MarkFlagRequired("states")
	_ = cmd.MarkFlagRequired("initial")
	_ = cmd.MarkFlagRequired("edges")
	_ = cmd.MarkFlagRequired("abc")
	cmd.PreRunE = func(cmd *cobra.Command, args []string) error {
		if len(abc) != 3 {
			return fmt.Errorf("--abc needs exactly 3 labels, got %d", len(abc))
		}

		return nil
	}

	return cmd
}

func newPlanFileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "plan-file <path>",
		Short: "Plan A->B->C->A from a YAML or JSON planning document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := spec.Load(args[0])
			if err != nil {
				newLogger().Event("error", map[string]any{"action": "load_spec", "error": err.Error()})

				return err
			}

			f, abc, pol, err := spec.Build(doc)
			if err != nil {
				newLogger().Event("error", map[string]any{"action": "build_spec", "error": err.Error()})

				return err
			}

			res := planner.PlanCycle(f, abc[0], abc[1], abc[2], !pol.AllowNegativeEdges)

			return report(res, map[string]any{
				"A": abc[0], "B": abc[1], "C": abc[2],
				"policy": map[string]any{
					"allow_negative_edges": pol.AllowNegativeEdges,
					"strict_invariants":    pol.StrictInvariants,
				},
			})
		},
	}
}
