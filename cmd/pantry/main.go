// Command pantry is a command-line client for the pantry API.
//
// Usage:
//
//	pantry [-server URL] [-token T -user ID] <command> [flags]
//
// The session printed by "login" is passed back with -token and -user, or
// through PANTRY_TOKEN and PANTRY_USER.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"pantry/internal/client"
	"pantry/internal/model"
)

const usage = `usage: pantry [global flags] <command> [flags]

commands:
  register   create an account
  login      sign in and print the session
  home       show profile, expiring-soon and low-stock views
  inventory  list ingredients
  add        add an ingredient (merges with a same-named one)
  inc        increase an ingredient's quantity by one
  dec        decrease an ingredient's quantity by one, removing it at zero
  rm         remove an ingredient
  clear      remove every ingredient
  recipes    suggest recipes from the inventory
  prefs      replace dietary preferences
  delete-account  delete the account and its data
`

func main() {
	global := flag.NewFlagSet("pantry", flag.ExitOnError)
	server := global.String("server", envOr("PANTRY_SERVER", "http://localhost:5000"), "API base URL")
	token := global.String("token", os.Getenv("PANTRY_TOKEN"), "bearer token from login")
	user := global.String("user", os.Getenv("PANTRY_USER"), "user id from login")
	global.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
		global.PrintDefaults()
	}
	_ = global.Parse(os.Args[1:])

	args := global.Args()
	if len(args) == 0 {
		global.Usage()
		os.Exit(2)
	}

	app := &app{api: client.New(*server), token: *token, user: *user}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := app.run(ctx, args[0], args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

type app struct {
	api   *client.Client
	token string
	user  string
}

func (a *app) run(ctx context.Context, cmd string, args []string) error {
	fs := flag.NewFlagSet(cmd, flag.ExitOnError)

	switch cmd {
	case "register":
		name := fs.String("name", "", "display name")
		location := fs.String("location", "", "location")
		email := fs.String("email", "", "email")
		password := fs.String("password", "", "password")
		_ = fs.Parse(args)
		u, err := a.api.Register(ctx, *name, *location, *email, *password)
		if err != nil {
			return err
		}
		return printJSON(u)

	case "login":
		email := fs.String("email", "", "email")
		password := fs.String("password", "", "password")
		_ = fs.Parse(args)
		s, err := a.api.Login(ctx, *email, *password)
		if err != nil {
			return err
		}
		return printJSON(s)

	case "home":
		_ = fs.Parse(args)
		s, err := a.session()
		if err != nil {
			return err
		}
		profile, err := a.api.Profile(ctx, s)
		if err != nil {
			return err
		}
		return printJSON(map[string]interface{}{
			"name":         profile.Name,
			"location":     profile.Location,
			"expiringSoon": client.ExpiringSoon(profile.Inventory, time.Now()),
			"lowStock":     client.LowStock(profile.Inventory),
		})

	case "inventory":
		_ = fs.Parse(args)
		s, err := a.session()
		if err != nil {
			return err
		}
		items, err := a.api.Inventory(ctx, s)
		if err != nil {
			return err
		}
		return printJSON(items)

	case "add":
		name := fs.String("name", "", "ingredient name")
		qty := fs.Int("qty", 1, "quantity")
		expiry := fs.String("expiry", "", "expiry date, YYYY-MM-DD (default: in 7 days)")
		image := fs.String("image", "", "image key (default: lower-cased name)")
		_ = fs.Parse(args)
		s, err := a.session()
		if err != nil {
			return err
		}
		var exp *time.Time
		if *expiry != "" {
			t, err := time.Parse("2006-01-02", *expiry)
			if err != nil {
				return fmt.Errorf("invalid -expiry: %w", err)
			}
			exp = &t
		}
		ing, err := a.api.AddIngredient(ctx, s, *name, *qty, exp, *image)
		if err != nil {
			return err
		}
		return printJSON(ing)

	case "inc", "dec":
		id := fs.String("id", "", "ingredient id")
		_ = fs.Parse(args)
		s, err := a.session()
		if err != nil {
			return err
		}
		item, err := a.findItem(ctx, s, *id)
		if err != nil {
			return err
		}
		if cmd == "inc" {
			ing, err := a.api.Increment(ctx, s, item)
			if err != nil {
				return err
			}
			return printJSON(ing)
		}
		ing, removed, err := a.api.Decrement(ctx, s, item)
		if err != nil {
			return err
		}
		if removed {
			return printJSON(map[string]string{"message": "ingredient removed"})
		}
		return printJSON(ing)

	case "rm":
		id := fs.String("id", "", "ingredient id")
		_ = fs.Parse(args)
		s, err := a.session()
		if err != nil {
			return err
		}
		ingredientID, err := uuid.Parse(*id)
		if err != nil {
			return fmt.Errorf("invalid -id: %w", err)
		}
		if err := a.api.RemoveIngredient(ctx, s, ingredientID); err != nil {
			return err
		}
		return printJSON(map[string]string{"message": "ingredient deleted"})

	case "clear":
		_ = fs.Parse(args)
		s, err := a.session()
		if err != nil {
			return err
		}
		n, err := a.api.ClearInventory(ctx, s)
		if err != nil {
			return err
		}
		return printJSON(map[string]int64{"count": n})

	case "recipes":
		_ = fs.Parse(args)
		s, err := a.session()
		if err != nil {
			return err
		}
		raw, err := a.api.Recipes(ctx, s)
		if err != nil {
			return err
		}
		return printJSON(raw)

	case "prefs":
		var dietary, allergies, cuisines listFlag
		fs.Var(&dietary, "diet", "dietary preference (repeatable)")
		fs.Var(&allergies, "allergy", "allergy (repeatable)")
		fs.Var(&cuisines, "cuisine", "cuisine (repeatable)")
		_ = fs.Parse(args)
		s, err := a.session()
		if err != nil {
			return err
		}
		prefs, err := a.api.UpdatePreferences(ctx, s, dietary, allergies, cuisines)
		if err != nil {
			return err
		}
		return printJSON(prefs)

	case "delete-account":
		_ = fs.Parse(args)
		s, err := a.session()
		if err != nil {
			return err
		}
		if err := a.api.DeleteAccount(ctx, s); err != nil {
			return err
		}
		return printJSON(map[string]string{"message": "user deleted successfully"})
	}

	return fmt.Errorf("unknown command %q", cmd)
}

func (a *app) session() (*client.Session, error) {
	if a.token == "" || a.user == "" {
		return nil, errors.New("not signed in: pass -token and -user, or set PANTRY_TOKEN and PANTRY_USER")
	}
	id, err := uuid.Parse(a.user)
	if err != nil {
		return nil, fmt.Errorf("invalid user id: %w", err)
	}
	return &client.Session{Token: a.token, UserID: id}, nil
}

// findItem re-fetches the inventory so the quantity change starts from the
// server's current value.
func (a *app) findItem(ctx context.Context, s *client.Session, id string) (model.Ingredient, error) {
	ingredientID, err := uuid.Parse(id)
	if err != nil {
		return model.Ingredient{}, fmt.Errorf("invalid -id: %w", err)
	}
	items, err := a.api.Inventory(ctx, s)
	if err != nil {
		return model.Ingredient{}, err
	}
	for _, it := range items {
		if it.ID == ingredientID {
			return it, nil
		}
	}
	return model.Ingredient{}, fmt.Errorf("ingredient %s not found", id)
}

type listFlag []string

func (l *listFlag) String() string { return fmt.Sprint([]string(*l)) }

func (l *listFlag) Set(v string) error {
	*l = append(*l, v)
	return nil
}

func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
