// Command cliquesat solves Maximum Clique on DIMACS graphs.
//
//	cliquesat exact brock200_2.clq --sat-backend gini --time-limit 5m
//	cliquesat grasp C250.9.clq.gz --alpha 0.2 --iterations 500
//	cliquesat generate planted -n 200 -p 0.5 -k 20 -o planted.clq
//
// Results are printed to stdout as JSON; logs and progress go to stderr.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
