package cli

import (
	"context"
	"fmt"
	"log"
)

func (a *App) Users(ctx context.Context) error {

	profiles, err := a.api.ListUsers(ctx)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	if len(profiles) == 0 {
		fmt.Println("No users registered")
		return nil
	}

	for _, p := range profiles {
		fmt.Printf("%s: %s %s (%s)\n", p.Username, p.FirstName, p.LastName, p.Phone)
	}
	return nil
}
