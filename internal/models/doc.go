// Package models defines the core domain records for Campus Compass.
//
// # Records
//
//   - User: a registered student account
//   - BillSplit / BillParticipant: one shared-expense event and the per-person
//     shares within it
//   - Expense: a personal expense entry
//   - Task: a to-do item with an optional reminder
//   - ClassSlot / Timetable: the weekly class schedule
//   - AttendanceRecord: one (date, subject) attendance mark
//
// # Design Principles
//
//  1. Records reference each other by ID string, never by pointer, to avoid
//     circular references.
//  2. Participant identity inside a BillSplit is a snapshot taken at creation
//     time (uid + username), not a live reference to the users table.
//  3. A BillSplit is immutable after creation except for the HasPaid flags of
//     its participants, which only ever move from false to true.
package models
