// Command schedule solves a university course/tutorial timetabling
// instance: it reads the input file, applies the eight numeric
// weights, runs the search engine, and prints the result.
package main

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/calgarycs/timetable/internal/input"
	"github.com/calgarycs/timetable/internal/output"
	"github.com/calgarycs/timetable/internal/solver"
	"github.com/calgarycs/timetable/internal/timetable"
)

var (
	deadline   = solver.DefaultDeadline
	seed       = time.Now().UnixNano()
	restarts   = solver.DefaultRestarts
	nodeBudget = solver.DefaultNodeBudget
)

func main() {
	log.SetFlags(log.Ltime)

	cmd := &cobra.Command{
		Use:   "schedule input-file w_minfilled w_pref w_pair w_secdiff pen_lecturemin pen_tutorialmin pen_notpaired pen_section",
		Short: "Solve a course and tutorial timetabling instance",
		Args:  cobra.ExactArgs(9),
		Run:   run,
	}
	cmd.Flags().DurationVarP(&deadline, "time", "t", deadline, "wall-clock deadline for the branch-and-bound search")
	cmd.Flags().Int64VarP(&seed, "seed", "s", seed, "random seed for greedy restarts (defaults to the current time)")
	cmd.Flags().IntVarP(&restarts, "restarts", "r", restarts, "number of randomized greedy restarts after the first pass fails")
	cmd.Flags().IntVar(&nodeBudget, "node-budget", nodeBudget, "expansion budget for a single greedy depth-first pass")

	if err := cmd.Execute(); err != nil {
		log.Fatalf("%v", err)
	}
}

func run(cmd *cobra.Command, args []string) {
	problem, err := input.Parse(args[0])
	if err != nil {
		log.Fatalf("%v", err)
	}

	weights, err := parseWeights(args[1:])
	if err != nil {
		log.Fatalf("%v", err)
	}
	if weights.PenLectureMin != 0 || weights.PenTutorialMin != 0 {
		log.Printf("warning: pen_lecturemin and pen_tutorialmin are accepted for compatibility but unused by the cost function")
	}
	input.ApplyWeights(problem, weights)

	result, err := solver.Solve(problem, solver.Options{
		Deadline:   deadline,
		Seed:       seed,
		Restarts:   restarts,
		NodeBudget: nodeBudget,
	})
	if err != nil {
		log.Fatalf("%v", err)
	}

	if err := output.Write(os.Stdout, result); err != nil {
		log.Fatalf("writing output: %v", err)
	}
}

func parseWeights(raw []string) (timetable.Weights, error) {
	values := make([]float64, len(raw))
	for i, field := range raw {
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return timetable.Weights{}, err
		}
		values[i] = v
	}
	return timetable.Weights{
		MinFilled:      values[0],
		Preference:     values[1],
		Pair:           values[2],
		SectionDiff:    values[3],
		PenLectureMin:  values[4],
		PenTutorialMin: values[5],
		PenNotPaired:   values[6],
		PenSection:     values[7],
	}, nil
}
