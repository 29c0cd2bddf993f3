// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 Tagchain Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/tagchain/tagd/broadcaster"
	"github.com/tagchain/tagd/cachestore"
	"github.com/tagchain/tagd/fault"
	"github.com/tagchain/tagd/storage"
	"github.com/tagchain/tagd/version"
)

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version.Version)
	}

	if len(options["help"]) > 0 {
		exitwithstatus.Message("usage: %s [--help] [--version] --config-file=FILE", program)
	}

	if len(arguments) > 0 {
		exitwithstatus.Message("%s: extraneous arguments: %v", program, arguments)
	}

	if 1 != len(options["config-file"]) {
		exitwithstatus.Message("%s: only one config-file option is required, %d were detected", program, len(options["config-file"]))
	}

	// read options and parse the configuration file
	configurationFile := options["config-file"][0]
	theConfiguration, err := getConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
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
	log.Infof("version: %s", version.Version)
	log.Debugf("theConfiguration: %v", theConfiguration)

	// set up the fault panic log (now that logging is available)
	fault.Initialise()
	defer fault.Finalise()

	// ------------------
	// start of real main
	// ------------------

	// optional PID file
	// use if not running under a supervisor program like daemon(8)
	if "" != theConfiguration.PidFile {
		lockFile, err := os.OpenFile(theConfiguration.PidFile, os.O_WRONLY|os.O_EXCL|os.O_CREATE, os.ModeExclusive|0600)
		if err != nil {
			if os.IsExist(err) {
				exitwithstatus.Message("%s: another instance is already running", program)
			}
			exitwithstatus.Message("%s: PID file: %q creation failed, error: %s", program, theConfiguration.PidFile, err)
		}
		fmt.Fprintf(lockFile, "%d\n", os.Getpid())
		lockFile.Close()
		defer os.Remove(theConfiguration.PidFile)
	}

	// general info
	log.Infof("database: %q", theConfiguration.Database)
	log.Infof("tracked contract: %q", theConfiguration.Cache.TrackedContract)
	log.Infof("start block: %d", theConfiguration.Cache.StartBlock)

	// start the data storage
	log.Info("initialise storage")
	database := filepath.Join(theConfiguration.Database.Directory, theConfiguration.Database.Name)
	err = storage.Initialise(database, storage.ReadWrite)
	if nil != err {
		log.Criticalf("storage initialise error: %s", err)
		exitwithstatus.Message("%s: storage initialise error: %s", program, err)
	}
	defer storage.Finalise()

	// start the cache layer
	log.Info("initialise cachestore")
	err = cachestore.Initialise(theConfiguration.Cache)
	if nil != err {
		log.Criticalf("cachestore initialise error: %s", err)
		exitwithstatus.Message("%s: cachestore initialise error: %s", program, err)
	}
	defer cachestore.Finalise()

	// start the transaction broadcaster
	if "" != theConfiguration.Broadcast.Node {
		log.Info("initialise broadcaster")
		err = broadcaster.Initialise(theConfiguration.Broadcast)
		if nil != err {
			log.Criticalf("broadcaster initialise error: %s", err)
			exitwithstatus.Message("%s: broadcaster initialise error: %s", program, err)
		}
		defer broadcaster.Finalise()
	}

	// wait for CTRL-C before shutting down to allow manual testing
	fmt.Printf("shutdown by signal: INT or TERM\n")

	// turn Signals into channel messages
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	sig := <-ch
	log.Infof("received signal: %v", sig)
	fmt.Printf("\nreceived signal: %v\n", sig)
	fmt.Printf("\nshutting down…\n")
}
