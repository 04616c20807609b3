package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/vk/countryplug/internal/capability"
	"github.com/vk/countryplug/internal/config"
	"github.com/vk/countryplug/internal/ctxlog"
	"github.com/vk/countryplug/internal/registry"
)

// Run executes the startup sequence: resolve the active country, load
// exactly that country's module, seal the registry, and print the
// capability demonstration.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	a.logger.Info("Available countries.", "countries", a.catalog.Codes())

	resolver := &config.Resolver{
		Argument: a.config.CountryCode,
		FilePath: a.config.ConfigFilePath,
		Catalog:  a.catalog,
	}
	active, err := resolver.Resolve(ctx)
	if err != nil {
		return fmt.Errorf("failed to resolve country configuration: %w", err)
	}

	result, err := a.loader.Load(ctx, active.Code)
	if err != nil {
		return err
	}

	// Loading is complete for this process; freeze before any reads.
	a.registry.Seal()
	a.logger.Info("Startup complete.",
		"country", result.Code,
		"provenance", string(active.Source),
		"capabilities", a.registry.Capabilities(),
	)

	if err := a.demo(active); err != nil {
		return err
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

// demo exercises the loaded capabilities the way the original demonstration
// does: greetings, the example name, and one valid plus one invalid
// address per the active country's postal rules.
func (a *App) demo(active config.Active) error {
	greeter, err := capability.ResolveGreeter(a.registry)
	if err != nil {
		return err
	}

	name := a.config.GreetName
	info := greeter.Info()
	fmt.Fprintln(a.outW, "Greetings:")
	fmt.Fprintf(a.outW, "  Hello: %s\n", greeter.Hello(name))
	fmt.Fprintf(a.outW, "  Goodbye: %s\n", greeter.Goodbye(name))
	fmt.Fprintf(a.outW, "  Implementation: %s (%s, %s)\n", info.Impl, info.Country, info.Language)

	namer, err := capability.ResolveNamer(a.registry)
	if err != nil {
		if !isUnregistered(err) {
			return err
		}
		a.logger.Debug("No Name override registered, using default.", "country", active.Code)
		namer = capability.DefaultName{}
	}
	fmt.Fprintf(a.outW, "  Example name: %s\n", namer.Get())

	addr, err := capability.ResolveAddress(a.registry)
	if err != nil {
		if !isUnregistered(err) {
			return err
		}
		a.logger.Debug("No Address override registered, using default.", "country", active.Code)
		addr = capability.DefaultAddress{}
	}

	validCode, invalidCode := "12345", "   "
	if addr.Country() == "HU" {
		validCode, invalidCode = "8200", "10 0"
	}

	fmt.Fprintln(a.outW, "Address:")
	formatted, err := addr.Format(capability.PostalAddress{
		Street:     "123 Main Street",
		City:       "Budapest",
		PostalCode: validCode,
	})
	if err != nil {
		return fmt.Errorf("address formatting failed for postal code '%s': %w", validCode, err)
	}
	fmt.Fprintf(a.outW, "  Formatted: %s\n", formatted)
	fmt.Fprintf(a.outW, "  Country: %s (separator '%s')\n", addr.Country(), addr.Separator())

	_, err = addr.Format(capability.PostalAddress{
		Street:     "456 Oak Avenue",
		City:       "Vienna",
		PostalCode: invalidCode,
	})
	if !errors.Is(err, capability.ErrInvalidPostalCode) {
		return fmt.Errorf("postal code '%s' should have been rejected, got: %v", invalidCode, err)
	}
	fmt.Fprintf(a.outW, "  Rejected postal code '%s': %v\n", invalidCode, err)

	return nil
}

func isUnregistered(err error) bool {
	var unregErr *registry.UnregisteredCapabilityError
	return errors.As(err, &unregErr)
}
