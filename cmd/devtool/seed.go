package main

import (
	"fmt"
	"strings"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/urfave/cli/v2"

	"github.com/osse101/RiftStats_Go/internal/server"
	"github.com/osse101/RiftStats_Go/internal/utils"
)

// seedUser is one account to create, parsed from "name:password[:admin]"
type seedUser struct {
	username string
	password string
	isAdmin  bool
}

func parseSeedUser(entry string) (seedUser, error) {
	parts := strings.Split(entry, ":")
	if len(parts) < 2 || len(parts) > 3 || parts[0] == "" || parts[1] == "" {
		return seedUser{}, fmt.Errorf("invalid user %q, expected name:password[:admin]", entry)
	}
	u := seedUser{username: parts[0], password: parts[1]}
	if len(parts) == 3 {
		if parts[2] != "admin" {
			return seedUser{}, fmt.Errorf("invalid role %q in %q, only admin is accepted", parts[2], entry)
		}
		u.isAdmin = true
	}
	return u, nil
}

// randomSeedUsers generates n accounts; the same seed gives the same accounts
func randomSeedUsers(n int, seed uint64) []seedUser {
	faker := gofakeit.New(seed)
	users := make([]seedUser, 0, n)
	for i := 0; i < n; i++ {
		users = append(users, seedUser{
			username: strings.ToLower(faker.Username()),
			password: faker.Password(true, true, true, false, false, 12),
		})
	}
	return users
}

// seedFileEntry is one account in a --file seed list
type seedFileEntry struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Admin    bool   `json:"admin"`
}

// loadSeedFile reads a JSON array of accounts
func loadSeedFile(path string) ([]seedUser, error) {
	var entries []seedFileEntry
	if err := utils.LoadJSON(path, &entries); err != nil {
		return nil, err
	}
	users := make([]seedUser, 0, len(entries))
	for i, e := range entries {
		if e.Username == "" || e.Password == "" {
			return nil, fmt.Errorf("%s: entry %d needs username and password", path, i)
		}
		users = append(users, seedUser{username: e.Username, password: e.Password, isAdmin: e.Admin})
	}
	return users, nil
}

type SeedUsersCommand struct{}

func (c *SeedUsersCommand) Name() string {
	return "seed-users"
}

func (c *SeedUsersCommand) Description() string {
	return "Create or overwrite accounts (--user name:password[:admin], --file users.json, --random N)"
}

func (c *SeedUsersCommand) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringSliceFlag{Name: "user", Usage: "name:password or name:password:admin, repeatable"},
		&cli.StringFlag{Name: "file", Usage: `JSON array of {"username","password","admin"}`},
		&cli.IntFlag{Name: "random", Usage: "also create N random non-admin accounts"},
		&cli.Uint64Flag{Name: "seed", Value: 1, Usage: "seed for random accounts"},
	}
}

func (c *SeedUsersCommand) Run(ctx *cli.Context) error {
	var users []seedUser
	for _, entry := range ctx.StringSlice("user") {
		u, err := parseSeedUser(entry)
		if err != nil {
			return err
		}
		users = append(users, u)
	}
	if path := ctx.String("file"); path != "" {
		fromFile, err := loadSeedFile(path)
		if err != nil {
			return err
		}
		users = append(users, fromFile...)
	}
	users = append(users, randomSeedUsers(ctx.Int("random"), ctx.Uint64("seed"))...)
	if len(users) == 0 {
		return fmt.Errorf("nothing to seed: pass --user, --file or --random")
	}

	PrintHeader(fmt.Sprintf("Seeding %d users", len(users)))
	return withServices(ctx.Context, func(svc server.Services) error {
		rows := make([][]string, 0, len(users))
		for _, u := range users {
			res, err := svc.Repair.UpsertUser(ctx.Context, u.username, u.password, u.isAdmin)
			if err != nil {
				return fmt.Errorf("failed to seed %s: %w", u.username, err)
			}
			rows = append(rows, []string{u.username, u.password, fmt.Sprint(u.isAdmin), res.Action})
		}
		PrintTable([]string{"USERNAME", "PASSWORD", "ADMIN", "ACTION"}, rows)
		PrintSuccess("Seed completed")
		return nil
	})
}
