package main

import (
	"fmt"
	"io"

	"orgs/internal/infra/fixture"

	"github.com/pkg/errors"
)

func runValidate(w io.Writer, path string) error {
	fmt.Fprintf(w, "Validating fixture: %s\n", path)

	f, err := fixture.Load(path)
	if err != nil {
		return err
	}

	if err := f.Validate(); err != nil {
		return errors.Wrap(err, "fixture is invalid")
	}

	fmt.Fprintf(w, "  buildings:     %d\n", len(f.Buildings))
	fmt.Fprintf(w, "  activities:    %d\n", len(f.Activities))
	fmt.Fprintf(w, "  organizations: %d\n", len(f.Organizations))
	fmt.Fprintln(w, "Validation passed")

	return nil
}
