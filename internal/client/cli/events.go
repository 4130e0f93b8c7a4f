package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/dmitrijs2005/eventplanner/internal/client/client"
	"github.com/dmitrijs2005/eventplanner/internal/client/models"
	"github.com/dmitrijs2005/eventplanner/internal/client/participation"
)

// date input formats accepted by create and search prompts
const (
	dateTimeLayout = "2006-01-02 15:04"
	dateLayout     = "2006-01-02"
)

func parseDateInput(s string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, dateTimeLayout, dateLayout} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q, use YYYY-MM-DD or YYYY-MM-DD HH:MM", s)
}

func printEventLine(e *models.Event) {
	fmt.Printf("%s  %s  %s  %s\n", e.ID, e.Date.Format(dateTimeLayout), e.Title, e.Location)
}

func printEventList(events []models.Event) {
	if len(events) == 0 {
		fmt.Println("No events")
		return
	}
	for i := range events {
		printEventLine(&events[i])
	}
}

func (a *App) printEventDetails(e *models.Event) {
	fmt.Println("Title:       ", e.Title)
	fmt.Println("Description: ", e.Description)
	fmt.Println("Date:        ", e.Date.Format(dateTimeLayout))
	fmt.Println("Location:    ", e.Location)
	fmt.Println("Participants:")
	for _, p := range e.Participants {
		line := "  " + p.UserID
		if p.Email != "" {
			line += " <" + p.Email + ">"
		}
		line += " (" + p.Role
		if p.Status != "" {
			line += ", " + p.Status
		}
		line += ")"
		fmt.Println(line)
	}

	facts := participation.Derive(e, a.session.UserID())
	switch {
	case facts.IsOrganizer:
		fmt.Println("You organize this event")
	case facts.IsParticipant && facts.Status != "":
		fmt.Println("Your response:", facts.Status)
	case facts.IsParticipant:
		fmt.Println("You are invited, no response yet")
	default:
		fmt.Println("You can join this event")
	}
}

// Create prompts for the event fields and creates the event. The caller
// becomes the organizer.
func (a *App) Create(ctx context.Context) error {
	title, err := getSimpleText(a.reader, "Enter title", os.Stdout)
	if err != nil {
		return err
	}
	description, err := getSimpleText(a.reader, "Enter description", os.Stdout)
	if err != nil {
		return err
	}
	dateText, err := getSimpleText(a.reader, "Enter date (YYYY-MM-DD HH:MM)", os.Stdout)
	if err != nil {
		return err
	}
	date, err := parseDateInput(dateText)
	if err != nil {
		fmt.Println(err)
		return err
	}
	location, err := getSimpleText(a.reader, "Enter location", os.Stdout)
	if err != nil {
		return err
	}

	params := &client.CreateEventParams{Title: title, Description: description, Date: date, Location: location}
	event, err := a.client.CreateEvent(ctx, params)
	if err != nil {
		a.report(err)
		return err
	}

	fmt.Println("Created event", event.ID)
	return nil
}

// Organized lists the events the current user organizes.
func (a *App) Organized(ctx context.Context) error {
	events, err := a.client.Organized(ctx)
	if err != nil {
		a.report(err)
		return err
	}
	printEventList(events)
	return nil
}

// Invited lists the events the current user participates in.
func (a *App) Invited(ctx context.Context) error {
	events, err := a.client.Invited(ctx)
	if err != nil {
		a.report(err)
		return err
	}
	printEventList(events)
	return nil
}

// Show prints one event with the current user's derived participation facts.
func (a *App) Show(ctx context.Context, eventID string) error {
	event, err := a.client.GetEvent(ctx, eventID)
	if err != nil {
		a.report(err)
		return err
	}
	a.printEventDetails(event)
	return nil
}

// Invite prompts for an email and invites that user to the event.
func (a *App) Invite(ctx context.Context, eventID string) error {
	if event, err := a.client.GetEvent(ctx, eventID); err == nil {
		if !participation.CanInvite(event, a.session.UserID()) {
			fmt.Println("Note: only the organizer can invite, the server will likely refuse")
		}
	}

	email, err := getSimpleText(a.reader, "Enter email to invite", os.Stdout)
	if err != nil {
		return err
	}

	event, err := a.client.Invite(ctx, eventID, email)
	if err != nil {
		a.report(err)
		return err
	}

	fmt.Println("Invited", email)
	a.printEventDetails(event)
	return nil
}

// Join adds the current user to the event.
func (a *App) Join(ctx context.Context, eventID string) error {
	event, err := a.client.Join(ctx, eventID)
	if err != nil {
		a.report(err)
		return err
	}
	fmt.Println("Joined event", event.ID)
	return nil
}

// Respond prompts for a status and records the current user's response.
func (a *App) Respond(ctx context.Context, eventID string) error {
	status, err := getSimpleText(a.reader, "Enter status (Going / Maybe / Not Going)", os.Stdout)
	if err != nil {
		return err
	}

	event, err := a.client.Respond(ctx, eventID, status)
	if err != nil {
		a.report(err)
		return err
	}

	facts := participation.Derive(event, a.session.UserID())
	fmt.Println("Your response:", facts.Status)
	return nil
}

// Search prompts for the filter fields, all optional, and lists matches.
func (a *App) Search(ctx context.Context) error {
	keyword, err := getSimpleText(a.reader, "Keyword (empty for any)", os.Stdout)
	if err != nil {
		return err
	}
	startText, err := getSimpleText(a.reader, "Start date (YYYY-MM-DD, empty for any)", os.Stdout)
	if err != nil {
		return err
	}
	endText, err := getSimpleText(a.reader, "End date (YYYY-MM-DD, empty for any)", os.Stdout)
	if err != nil {
		return err
	}
	role, err := getSimpleText(a.reader, "Your role (organizer / attendee, empty for any)", os.Stdout)
	if err != nil {
		return err
	}

	filter := &client.SearchFilter{Keyword: keyword, Role: role}
	if startText != "" {
		start, err := parseDateInput(startText)
		if err != nil {
			fmt.Println(err)
			return err
		}
		filter.StartDate = &start
	}
	if endText != "" {
		end, err := parseDateInput(endText)
		if err != nil {
			fmt.Println(err)
			return err
		}
		filter.EndDate = &end
	}

	events, err := a.client.Search(ctx, filter)
	if err != nil {
		a.report(err)
		return err
	}
	printEventList(events)
	return nil
}

// Delete removes an event the current user organizes.
func (a *App) Delete(ctx context.Context, eventID string) error {
	if err := a.client.DeleteEvent(ctx, eventID); err != nil {
		a.report(err)
		return err
	}
	fmt.Println("Event deleted")
	return nil
}
