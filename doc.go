// Package main is the entry point of kj-requests, a small web service for
// karaoke nights. Attendees submit song requests through a form, the KJ
// works through the day's queue on a dashboard and can open or close
// requests. Records are stored with gorm on MySQL, PostgreSQL or SQLite and
// served by fiber.
package main
