package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"
)

const timeFormat = "2006-01-02 15:04"

// promptMessageID asks the user for a message id and parses it.
func (a *App) promptMessageID() (int64, error) {
	text, err := GetSimpleText(a.reader, "Enter message id", os.Stdout)
	if err != nil {
		return 0, err
	}
	id, err := strconv.ParseInt(text, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid message id: %q", text)
	}
	return id, nil
}

func readMarker(readAt *time.Time) string {
	if readAt == nil {
		return "unread"
	}
	return "read " + readAt.Local().Format(timeFormat)
}

func (a *App) Send(ctx context.Context) error {

	to, err := GetSimpleText(a.reader, "Enter recipient username", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	body, err := GetMultiline(a.reader, "Enter message", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	msg, err := a.api.SendMessage(ctx, to, body)
	if err != nil {
		log.Printf("Send unsuccessful: %s", err.Error())
		return err
	}

	fmt.Printf("Message %d sent to %s\n", msg.ID, msg.ToUsername)
	return nil
}

func (a *App) Inbox(ctx context.Context) error {

	msgs, err := a.api.ListReceived(ctx, a.userName)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	if len(msgs) == 0 {
		fmt.Println("Inbox is empty")
		return nil
	}

	for _, m := range msgs {
		fmt.Printf("[%d] from %s at %s (%s): %s\n",
			m.ID, m.From.Username, m.SentAt.Local().Format(timeFormat), readMarker(m.ReadAt), m.Body)
	}
	return nil
}

func (a *App) Outbox(ctx context.Context) error {

	msgs, err := a.api.ListSent(ctx, a.userName)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	if len(msgs) == 0 {
		fmt.Println("No sent messages")
		return nil
	}

	for _, m := range msgs {
		fmt.Printf("[%d] to %s at %s (%s): %s\n",
			m.ID, m.To.Username, m.SentAt.Local().Format(timeFormat), readMarker(m.ReadAt), m.Body)
	}
	return nil
}

func (a *App) Show(ctx context.Context) error {

	id, err := a.promptMessageID()
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	msg, err := a.api.GetMessage(ctx, id)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	fmt.Printf("Message %d\n", msg.ID)
	fmt.Printf("From: %s %s (%s)\n", msg.From.FirstName, msg.From.LastName, msg.From.Username)
	fmt.Printf("To:   %s %s (%s)\n", msg.To.FirstName, msg.To.LastName, msg.To.Username)
	fmt.Printf("Sent: %s, %s\n", msg.SentAt.Local().Format(timeFormat), readMarker(msg.ReadAt))
	fmt.Println(msg.Body)
	return nil
}

func (a *App) Read(ctx context.Context) error {

	id, err := a.promptMessageID()
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	receipt, err := a.api.MarkRead(ctx, id)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	fmt.Printf("Message %d: %s\n", receipt.ID, readMarker(receipt.ReadAt))
	return nil
}
