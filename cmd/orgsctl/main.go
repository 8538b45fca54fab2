package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
)

// Supported subcommands:
// - validate: Check a fixture file without touching the database
// - seed:     Validate a fixture and load it into PostgreSQL

const defaultFixture = "./config/fixture.yaml"

func main() {
	validateCmd := flag.NewFlagSet("validate", flag.ExitOnError)
	seedCmd := flag.NewFlagSet("seed", flag.ExitOnError)

	// validate parameters
	validateFixture := validateCmd.String("fixture", defaultFixture, "Fixture YAML file to check")

	// seed parameters
	seedFixture := seedCmd.String("fixture", defaultFixture, "Fixture YAML file to load")
	seedVerbose := seedCmd.Bool("v", false, "Log at debug level")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	flags := ctlFlags{
		Validate: validateFlags{
			cmd:     validateCmd,
			fixture: validateFixture,
		},
		Seed: seedFlags{
			cmd:     seedCmd,
			fixture: seedFixture,
			verbose: seedVerbose,
		},
	}

	if err := runSubcommand(ctx, &flags); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type ctlFlags struct {
	Validate validateFlags
	Seed     seedFlags
}

type validateFlags struct {
	cmd     *flag.FlagSet
	fixture *string
}

type seedFlags struct {
	cmd     *flag.FlagSet
	fixture *string
	verbose *bool
}

func runSubcommand(ctx context.Context, flags *ctlFlags) error {
	switch os.Args[1] {
	case "validate":
		return handleValidate(flags)
	case "seed":
		return handleSeed(ctx, flags)
	default:
		printUsage()

		return errors.New("unknown subcommand")
	}
}

func handleValidate(flags *ctlFlags) error {
	if err := flags.Validate.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse validate flags")
	}

	return runValidate(os.Stdout, *flags.Validate.fixture)
}

func handleSeed(ctx context.Context, flags *ctlFlags) error {
	if err := flags.Seed.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse seed flags")
	}

	return runSeed(ctx, *flags.Seed.fixture, *flags.Seed.verbose)
}

func printUsage() {
	fmt.Println("Usage: orgsctl <command> [options]")
	fmt.Println("")
	fmt.Println("Commands:")
	fmt.Println("  validate    Check fixture integrity (references, coordinates, activity depth)")
	fmt.Println("  seed        Load a fixture into PostgreSQL in one transaction")
	fmt.Println("")
	fmt.Println("Use 'orgsctl <command> -h' for more information about a command.")
}
