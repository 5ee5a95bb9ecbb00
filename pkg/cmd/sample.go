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
	"strconv"
	"strings"

	"github.com/consensys/go-symdiff/pkg/expr"
	"github.com/consensys/go-symdiff/pkg/util/tensor"
	"github.com/davecgh/go-spew/spew"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// sampleCmd represents the sample command
var sampleCmd = &cobra.Command{
	Use:   "sample [flags] [name...]",
	Short: "Differentiate and evaluate expressions from the built-in catalogue.",
	Long: `Print one or more expressions from the built-in catalogue, along with
	their derivatives.  If any variable bindings are given (e.g. --at x=1.5 or
	--at x=1,2,3 for elementwise evaluation), both are also evaluated.  Unbound
	variables default to one.  With no names, every sample is shown.`,
	Run: func(cmd *cobra.Command, args []string) {
		var cfg sampleConfig
		//
		if GetFlag(cmd, "list") {
			for _, name := range sampleNames() {
				s, _ := findSample(name)
				fmt.Printf("%-10s %s\n", s.name, s.description)
			}
			//
			return
		}
		//
		cfg.lisp = GetFlag(cmd, "lisp")
		cfg.dump = GetFlag(cmd, "dump")
		cfg.ansiEscapes = GetFlag(cmd, "ansi-escapes")
		//
		bindings, err := parseBindings(GetStringArray(cmd, "at"))
		if err != nil {
			log.Error(err)
			os.Exit(2)
		}
		//
		cfg.bindings = bindings
		// Default to everything
		if len(args) == 0 {
			args = sampleNames()
		}
		//
		for _, name := range args {
			s, ok := findSample(name)
			if !ok {
				log.Errorf("unknown sample \"%s\" (try --list)", name)
				os.Exit(2)
			}
			//
			if !printSample(s, cfg) {
				os.Exit(1)
			}
		}
	},
}

type sampleConfig struct {
	// Variable bindings, by name
	bindings map[string]tensor.Value
	// Print S-Expressions rather than infix
	lisp bool
	// Dump expression trees
	dump bool
	// Highlight output
	ansiEscapes bool
}

// Print a given sample, its derivatives and (if requested) their values.
// Returns false if evaluation failed.
func printSample(s sample, cfg sampleConfig) bool {
	var (
		x, y = expr.NewVariable("x"), expr.NewVariable("y")
		f    = s.build(x, y)
		vars = expr.FreeVariables(f)
	)
	//
	fmt.Printf("%s: %s\n", highlight(s.name, cfg), render(f, cfg))
	//
	if cfg.dump {
		spew.Dump(f)
	}
	//
	for _, v := range vars {
		fmt.Printf("  d/d%s: %s\n", v.Name(), render(f.Backward(v), cfg))
	}
	//
	if len(cfg.bindings) == 0 {
		return true
	}
	// Construct assignment
	values := make(expr.Assignment, len(vars))
	point := make([]string, len(vars))
	//
	for i, v := range vars {
		val, ok := cfg.bindings[v.Name()]
		if !ok {
			log.Debugf("variable %s unbound, defaulting to 1", v.Name())
			//
			val = tensor.Scalar(1)
		}
		//
		values[v] = val
		point[i] = fmt.Sprintf("%s=%s", v.Name(), val)
	}
	//
	at := strings.Join(point, ",")
	//
	if !printValue(fmt.Sprintf("f(%s)", at), f, values) {
		return false
	}
	//
	for _, v := range vars {
		if !printValue(fmt.Sprintf("d/d%s(%s)", v.Name(), at), f.Backward(v), values) {
			return false
		}
	}
	//
	return true
}

func printValue(label string, e expr.Expr, values expr.Assignment) bool {
	val, err := e.Compute(values)
	if err != nil {
		log.Errorf("evaluating %s: %s", label, err)
		return false
	}
	//
	fmt.Printf("  %s = %s\n", label, val)
	//
	return true
}

func render(e expr.Expr, cfg sampleConfig) string {
	if cfg.lisp {
		return e.Lisp().String(true)
	}
	//
	return e.String()
}

func highlight(text string, cfg sampleConfig) string {
	if cfg.ansiEscapes {
		return fmt.Sprintf("\033[1m%s\033[0m", text)
	}
	//
	return text
}

// Parse variable bindings of the form "name=v" or "name=v1,v2,...,vn".
func parseBindings(args []string) (map[string]tensor.Value, error) {
	var bindings = make(map[string]tensor.Value)
	//
	for _, arg := range args {
		name, values, ok := strings.Cut(arg, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid binding \"%s\" (expected name=value)", arg)
		}
		//
		split := strings.Split(values, ",")
		elements := make([]float64, len(split))
		//
		for i, s := range split {
			v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
			if err != nil {
				return nil, fmt.Errorf("invalid binding \"%s\": %w", arg, err)
			}
			//
			elements[i] = v
		}
		//
		if len(elements) == 1 {
			bindings[name] = tensor.Scalar(elements[0])
		} else {
			bindings[name] = tensor.Vector(elements...)
		}
	}
	//
	return bindings, nil
}

func init() {
	sampleCmd.Flags().StringArray("at", nil, "bind a variable (e.g. x=1.5 or x=1,2,3)")
	sampleCmd.Flags().Bool("list", false, "list available samples")
	sampleCmd.Flags().Bool("lisp", false, "print expressions as S-Expressions")
	sampleCmd.Flags().Bool("dump", false, "dump expression trees")
	sampleCmd.Flags().Bool("ansi-escapes", term.IsTerminal(int(os.Stdout.Fd())), "highlight output using ANSI escapes")
	rootCmd.AddCommand(sampleCmd)
}
