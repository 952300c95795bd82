package cli

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/messagely/internal/common"
)

func (a *App) Register(ctx context.Context) error {

	userName, err := GetSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	password, err := GetPassword(os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	defer common.WipeByteArray(password)

	firstName, err := GetSimpleText(a.reader, "Enter first name", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	lastName, err := GetSimpleText(a.reader, "Enter last name", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	phone, err := GetSimpleText(a.reader, "Enter phone", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	if err := a.api.Register(ctx, userName, password, firstName, lastName, phone); err != nil {
		log.Printf("Registration unsuccessful: %s", err.Error())
		return err
	}

	a.userName = userName
	log.Printf("Registered and logged in as %s", userName)
	return nil
}

func (a *App) Login(ctx context.Context) error {

	userName, err := GetSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	password, err := GetPassword(os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.api.Login(ctx, userName, password); err != nil {
		log.Printf("Login unsuccessful: %s", err.Error())
		return err
	}

	a.userName = userName
	log.Printf("Login successful")
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	a.api.Logout()
	a.userName = ""
	log.Printf("Logged out")
	return nil
}
