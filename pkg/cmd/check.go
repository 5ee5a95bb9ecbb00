// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package cmd

import (
	"fmt"
	"os"

	"github.com/consensys/go-symdiff/pkg/gradcheck"
	"github.com/consensys/go-symdiff/pkg/util"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check [flags]",
	Short: "Cross-check symbolic derivatives of random expressions.",
	Long: `Generate random expressions, differentiate them symbolically and compare
	the result against a central finite difference at a random point.  Any
	disagreement is reported, and causes a non-zero exit status.`,
	Run: func(cmd *cobra.Command, args []string) {
		var cfg checkConfig
		//
		if len(args) != 0 {
			fmt.Println(cmd.UsageString())
			os.Exit(2)
		}
		//
		cfg.opts.Samples = GetUint(cmd, "samples")
		cfg.opts.Depth = GetUint(cmd, "depth")
		cfg.opts.Variables = GetUint(cmd, "vars")
		cfg.opts.Seed = GetUint64(cmd, "seed")
		cfg.opts.Tolerance = GetFloat(cmd, "tolerance")
		cfg.opts.Step = GetFloat(cmd, "step")
		cfg.opts.Lo = GetFloat(cmd, "lo")
		cfg.opts.Hi = GetFloat(cmd, "hi")
		cfg.quiet = GetFlag(cmd, "quiet")
		//
		if cfg.opts.Lo >= cfg.opts.Hi {
			log.Errorf("invalid sampling interval [%v,%v)", cfg.opts.Lo, cfg.opts.Hi)
			os.Exit(2)
		}
		//
		if !runChecks(cfg) {
			os.Exit(1)
		}
	},
}

type checkConfig struct {
	opts gradcheck.Options
	// Suppress the summary line
	quiet bool
}

// Run the randomised checks, reporting any failures.  Returns true if all
// checks passed.
func runChecks(cfg checkConfig) bool {
	stats := util.NewPerfStats()
	report, err := gradcheck.Run(cfg.opts)
	//
	stats.Log("Checking derivatives")
	//
	if err != nil {
		log.Error(err)
		return false
	}
	//
	for _, f := range report.Failures {
		log.Errorf("derivative mismatch %s", f)
	}
	//
	if !cfg.quiet {
		fmt.Printf("checked %d derivatives of %d expressions (%d skipped, %d failed)\n",
			report.Checked, cfg.opts.Samples, report.Skipped, len(report.Failures))
	}
	//
	return len(report.Failures) == 0
}

func init() {
	var defaults = gradcheck.DefaultOptions()
	//
	checkCmd.Flags().Uint("samples", defaults.Samples, "number of random expressions to check")
	checkCmd.Flags().Uint("depth", defaults.Depth, "maximum depth of generated expressions")
	checkCmd.Flags().Uint("vars", defaults.Variables, "number of distinct variables")
	checkCmd.Flags().Uint64("seed", defaults.Seed, "seed for random generation")
	checkCmd.Flags().Float64("tolerance", defaults.Tolerance, "tolerance for agreement")
	checkCmd.Flags().Float64("step", defaults.Step, "step size for finite differences")
	checkCmd.Flags().Float64("lo", defaults.Lo, "lower bound for evaluation points")
	checkCmd.Flags().Float64("hi", defaults.Hi, "upper bound for evaluation points")
	checkCmd.Flags().BoolP("quiet", "q", false, "suppress summary output")
	rootCmd.AddCommand(checkCmd)
}
