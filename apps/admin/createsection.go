package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/mwalimu/gradebook/core/section"
)

func (cli *commandLine) createSection(args []string) error {
	createCmd := flag.NewFlagSet("createsection", flag.ExitOnError)
	course := createCmd.String("course", "", "Course code, e.g. CS101.")
	title := createCmd.String("title", "", "Course title.")
	instructor := createCmd.Int("instructor", 0, "Instructor id.")
	term := createCmd.String("term", "", "Term, e.g. fall.")
	year := createCmd.Int("year", 0, "Year, e.g. 2026.")
	dayTime := createCmd.String("daytime", "", "Schedule, e.g. 'Mon/Wed 10:00'.")
	room := createCmd.String("room", "", "Room.")
	capacity := createCmd.Int("capacity", 0, "Section capacity.")
	if err := createCmd.Parse(args); err != nil {
		return err
	}

	sec, err := cli.sections.Create(context.Background(), section.NewSection{
		CourseCode:   *course,
		Title:        *title,
		InstructorID: *instructor,
		Term:         *term,
		Year:         *year,
		DayTime:      *dayTime,
		Room:         *room,
		Capacity:     *capacity,
	})
	if err != nil {
		return err
	}
	fmt.Printf("created section %d (%s %s)\n", sec.ID, sec.CourseCode, sec.Title)
	return nil
}
