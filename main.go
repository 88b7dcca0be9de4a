// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// showcase program for the AVL tree
//
// builds a tree key by key so that an attached memory inspector can
// follow the insertions, the balance factors and the rotations live;
// without the inspector the same session can be followed with the
// --verbose flag and the log
package main

import (
	"fmt"
	"strconv"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/IWonderWhatThisAPIDoes/aili/avl"
	"github.com/IWonderWhatThisAPIDoes/aili/configuration"
	"github.com/IWonderWhatThisAPIDoes/aili/fault"
)

// integer key for the showcase tree
type intKey int

// Compare - sign of receiver minus argument
func (k intKey) Compare(x interface{}) int {
	switch j := x.(intKey); {
	case k < j:
		return -1
	case k > j:
		return +1
	default:
		return 0
	}
}

func (k intKey) String() string {
	return strconv.Itoa(int(k))
}

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, Version)
	}

	if len(options["help"]) > 0 {
		fmt.Printf("usage: %s [--help] [--verbose] [--version] [--config-file=FILE] [keys...]\n", program)
		fmt.Printf("       --help             (-h)  - display this message\n")
		fmt.Printf("       --verbose          (-v)  - print the tree after every insertion\n")
		fmt.Printf("       --version          (-V)  - display version and exit\n")
		fmt.Printf("       --config-file=FILE (-c)  - Lua configuration file\n")
		fmt.Printf("       keys                     - integer keys added after the configured ones\n")
		exitwithstatus.Exit(0)
	}

	theConfiguration := configuration.Default()
	switch len(options["config-file"]) {
	case 0:
	case 1:
		theConfiguration, err = configuration.GetConfiguration(options["config-file"][0])
		if nil != err {
			exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, options["config-file"][0], err)
		}
	default:
		exitwithstatus.Message("%s: at most one config-file option is allowed, %d were detected", program, len(options["config-file"]))
	}

	if len(options["verbose"]) > 0 {
		theConfiguration.ShowTree = true
	}

	keys := theConfiguration.IntKeys()
	for _, arg := range arguments {
		key, err := strconv.Atoi(arg)
		if nil != err {
			exitwithstatus.Message("%s: key: %q is not an integer", program, arg)
		}
		keys = append(keys, key)
	}

	// start logging
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", Version)

	// set up the fault panic log (now that logging is available)
	fault.Initialise()
	defer fault.Finalise()

	// ------------------
	// start of real main
	// ------------------

	runShowcase(log, keys, theConfiguration.ShowTree)
}

// build the tree one key at a time, verifying after every step, then
// tear the whole thing down
func runShowcase(log *logger.L, keys []int, showTree bool) {

	tree := avl.New()

	for _, key := range keys {
		if tree.Insert(intKey(key)) {
			log.Infof("insert: %d  nodes: %d  height: %d", key, tree.Count(), tree.Height())
		} else {
			log.Infof("insert: %d  already present", key)
		}

		verifyTree(tree)

		if showTree {
			depth := tree.Print(true)
			fmt.Printf("nodes: %d  depth: %d\n\n", tree.Count(), depth)
		}
	}

	// level by level summary, the view the inspector renders
	if !tree.IsEmpty() {
		root := tree.Root()
		for depth := uint(0); ; depth += 1 {
			level := root.GetChildrenByDepth(depth)
			if 0 == len(level) {
				break
			}
			line := ""
			for _, p := range level {
				line += fmt.Sprintf("  %v(%+d)", p.Key(), p.Balance())
			}
			log.Infof("level %d:%s", depth, line)
		}
	}

	tree.Destroy()
	if !tree.IsEmpty() {
		fault.Panic("tree is not empty after teardown")
	}
	log.Info("teardown complete")
}

// the structural invariants must hold between any two operations
// failure here is a defect in the balance bookkeeping, not a
// recoverable condition
func verifyTree(tree *avl.Tree) {
	if !tree.CheckUp() {
		fault.Panic("corrupt parent pointers")
	}
	if !tree.CheckBalance() {
		fault.Panic("corrupt balance factors")
	}
	if !tree.CheckOrder() {
		fault.Panic("corrupt key ordering")
	}
}
