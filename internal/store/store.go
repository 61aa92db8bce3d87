package store

import (
	"database/sql"
	"errors"
	"log"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"

	"github.com/asharma/money-reminders/internal/model"
)

// ErrNotFound is returned when no reminder exists for the requested id.
var ErrNotFound = errors.New("reminder not found")

// db is a handle to the database.
var db *sqlx.DB

// insert is a prepared statement for creating a reminder on the database.
var insert *sqlx.NamedStmt

// selectAll is a prepared statement for selecting all reminders ordered by
// due date, latest first.
var selectAll *sqlx.Stmt

// selectWhereId is a prepared statement for selecting the reminder with a
// given id.
var selectWhereId *sqlx.Stmt

// deleteWhereId is a prepared statement for deleting the reminder with a
// given id.
var deleteWhereId *sqlx.Stmt

// CreateDatabase initializes and returns a database connection for the
// specified data source name.
func CreateDatabase(dsn string) *sql.DB {
	sqlDB, err := sql.Open("mysql", dsn)
	if err != nil {
		log.Fatal(err)
	}
	return sqlDB
}

// Setup initializes the sqlx database wrapper with the specified sql
// database and prepares all statements. The database argument can be a real
// database for production use or a mock database within unit tests.
func Setup(sqlDB *sql.DB) {
	var err error
	db = sqlx.NewDb(sqlDB, "mysql")

	// Prepared statements offer a significant speed increase if executed many times.
	insert, err = db.PrepareNamed(`
		INSERT INTO reminders (person_name, phone_number, amount, due_date, is_paid)
		VALUES (:person_name, :phone_number, :amount, :due_date, :is_paid)
	`)
	if err != nil {
		log.Fatal(err)
	}
	selectAll, err = db.Preparex(`
		SELECT * FROM reminders ORDER BY due_date DESC
	`)
	if err != nil {
		log.Fatal(err)
	}
	selectWhereId, err = db.Preparex(`
		SELECT * FROM reminders WHERE id = ?
	`)
	if err != nil {
		log.Fatal(err)
	}
	deleteWhereId, err = db.Preparex(`
		DELETE FROM reminders WHERE id = ?
	`)
	if err != nil {
		log.Fatal(err)
	}
}

// List returns all reminders ordered by due date descending. An empty table
// yields an empty slice, not nil, so that it serializes as a JSON array.
func List() ([]model.Reminder, error) {
	reminders := []model.Reminder{}
	if err := selectAll.Select(&reminders); err != nil {
		return nil, err
	}
	return reminders, nil
}

// Get returns the reminder with the given id or ErrNotFound.
func Get(id int64) (model.Reminder, error) {
	var reminders []model.Reminder
	if err := selectWhereId.Select(&reminders, id); err != nil {
		return model.Reminder{}, err
	}
	if len(reminders) == 0 {
		return model.Reminder{}, ErrNotFound
	}
	return reminders[0], nil
}

// Create inserts a new reminder built from the input and returns the
// persisted row including the assigned id. IsPaid defaults to false when the
// caller did not submit it. The input must have passed ValidateCreate.
func Create(in model.ReminderInput) (model.Reminder, error) {
	reminder := model.Reminder{
		PersonName:  *in.PersonName,
		PhoneNumber: *in.PhoneNumber,
		Amount:      *in.Amount,
		DueDate:     *in.DueDate,
	}
	if in.IsPaid != nil {
		reminder.IsPaid = *in.IsPaid
	}
	result, err := insert.Exec(&reminder)
	if err != nil {
		return model.Reminder{}, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return model.Reminder{}, err
	}
	reminder.Id = id
	return reminder, nil
}

// Update merges the submitted fields into the reminder with the given id and
// returns the row after the update. It returns ErrNotFound if no such
// reminder exists. The existence check runs before the UPDATE so that a
// merge which changes nothing still succeeds.
func Update(id int64, in model.ReminderInput) (model.Reminder, error) {
	if _, err := Get(id); err != nil {
		return model.Reminder{}, err
	}

	var args []interface{}
	sql := "UPDATE reminders SET "
	if in.PersonName != nil {
		args = append(args, in.PersonName)
		sql += "person_name=?, "
	}
	if in.PhoneNumber != nil {
		args = append(args, in.PhoneNumber)
		sql += "phone_number=?, "
	}
	if in.Amount != nil {
		args = append(args, in.Amount)
		sql += "amount=?, "
	}
	if in.DueDate != nil {
		args = append(args, in.DueDate)
		sql += "due_date=?, "
	}
	if in.IsPaid != nil {
		args = append(args, in.IsPaid)
		sql += "is_paid=?, "
	}

	sql = sql[:len(sql)-2]
	sql += " WHERE id=?"
	args = append(args, id)
	if _, err := db.Exec(sql, args...); err != nil {
		return model.Reminder{}, err
	}

	return Get(id)
}

// Delete removes the reminder with the given id. Deleting an id that does
// not exist is not an error.
func Delete(id int64) error {
	_, err := deleteWhereId.Exec(id)
	return err
}
