// Command deckpadctl inspects and manages deckpad profiles from the
// terminal, outside the host application.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/llehouerou/deckpad/internal/actions"
	"github.com/llehouerou/deckpad/internal/config"
	"github.com/llehouerou/deckpad/internal/controller"
	"github.com/llehouerou/deckpad/internal/errmsg"
	"github.com/llehouerou/deckpad/internal/profile"
	"github.com/llehouerou/deckpad/internal/store"
)

const usage = `usage: deckpadctl <command> [args]

commands:
  controllers                      list supported controllers
  profiles                         list stored profiles
  show <profile>                   print a profile's effective bindings
  default <controller>             create and save a default profile
  assign <controller> <profile>    assign a profile to a controller
  identify <id> <buttons> <axes>   identify a controller id string
  actions <state>                  list the actions available in a state
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "controllers":
		err = listControllers()
	case "profiles":
		err = listProfiles()
	case "show":
		err = withArgs(1, func(args []string) error { return showProfile(args[0]) })
	case "default":
		err = withArgs(1, func(args []string) error { return createDefault(args[0]) })
	case "assign":
		err = withArgs(2, func(args []string) error { return assignProfile(args[0], args[1]) })
	case "identify":
		err = withArgs(3, func(args []string) error { return identify(args[0], args[1], args[2]) })
	case "actions":
		err = withArgs(1, func(args []string) error { return listActions(args[0]) })
	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func withArgs(n int, fn func(args []string) error) error {
	args := os.Args[2:]
	if len(args) != n {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
	return fn(args)
}

func openStore() (*store.Store, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("%s", errmsg.Format(errmsg.OpConfigLoad, err))
	}
	if cfg.ProfilesDir != "" {
		return store.OpenDir(cfg.ProfilesDir)
	}
	return store.Open()
}

func listControllers() error {
	for _, name := range controller.List() {
		fmt.Println(name)
	}
	return nil
}

func listProfiles() error {
	s, err := openStore()
	if err != nil {
		return err
	}
	names, err := s.List()
	if err != nil {
		return err
	}
	for _, name := range names {
		fmt.Println(name)
	}
	return nil
}

func showProfile(name string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	p, err := s.Load(name)
	if err != nil {
		return fmt.Errorf("%s", errmsg.FormatWith(errmsg.OpProfileLoad, name, err))
	}

	fmt.Printf("%s (%s, %d buttons, %d axes)\n", p.Name, p.Controller, p.LenButtons, p.LenAxes)
	desc, err := p.Descriptor()
	if err != nil {
		return err
	}
	buttons, err := p.BindableButtons()
	if err != nil {
		return err
	}

	for _, state := range profile.States() {
		printed := false
		for mod := 0; mod <= len(p.Mods); mod++ {
			for _, button := range buttons {
				action, inherited := p.EffectiveAction(state, mod, button)
				if action == "" || inherited {
					continue
				}
				if !printed {
					fmt.Printf("\n[%s]\n", state.DisplayName())
					printed = true
				}
				label := desc.ButtonName(button)
				if mod > 0 {
					label = fmt.Sprintf("%s + %s", desc.ButtonName(p.Mods[mod-1]), label)
				}
				fmt.Printf("  %-28s %s\n", label, action)
			}
		}
	}
	return nil
}

func createDefault(controllerName string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	p, err := profile.Default(controllerName)
	if err != nil {
		return err
	}
	if err := s.Save(p); err != nil {
		return fmt.Errorf("%s", errmsg.FormatWith(errmsg.OpProfileSave, p.Name, err))
	}
	fmt.Printf("saved profile %q\n", p.Name)
	return nil
}

func assignProfile(controllerName, profileName string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	if !s.Exists(profileName) {
		return fmt.Errorf("profile %q does not exist", profileName)
	}
	desc, err := controller.Describe(controllerName)
	if err != nil {
		return err
	}
	assign, err := store.OpenAssignments()
	if err != nil {
		return err
	}
	defer assign.Close()
	if err := assign.Set(controllerName, profileName, len(desc.Buttons), len(desc.Axes)); err != nil {
		return fmt.Errorf("%s", errmsg.FormatWith(errmsg.OpControllerAssign, controllerName, err))
	}
	fmt.Printf("%s -> %s\n", controllerName, profileName)
	return nil
}

func identify(id, buttonsArg, axesArg string) error {
	buttons, err := strconv.Atoi(buttonsArg)
	if err != nil {
		return fmt.Errorf("buttons: %w", err)
	}
	axes, err := strconv.Atoi(axesArg)
	if err != nil {
		return fmt.Errorf("axes: %w", err)
	}
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("%s", errmsg.Format(errmsg.OpConfigLoad, err))
	}
	name, ok := controller.Identify(id, buttons, axes, cfg.DetectEightBitDo)
	if !ok {
		name = controller.StandardName(buttons, axes)
		fmt.Printf("unrecognised, falling back to %q\n", name)
		return nil
	}
	fmt.Println(name)
	return nil
}

func listActions(stateArg string) error {
	state := profile.State(stateArg)
	if !state.Valid() {
		return fmt.Errorf("unknown state %q", stateArg)
	}
	for _, action := range actions.ForState(state) {
		if action != "" {
			fmt.Println(action)
		}
	}
	return nil
}
