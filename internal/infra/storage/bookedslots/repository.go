package bookedslots

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/MediCare-Gateway/internal/domain"
	"github.com/m04kA/MediCare-Gateway/pkg/psqlbuilder"
	"github.com/m04kA/MediCare-Gateway/pkg/txmanager"
)

const (
	table = "booked_slots"

	// uniqueViolation код ошибки PostgreSQL для частичного уникального индекса активных броней
	uniqueViolation = "23505"

	// serializationFailure конкурентная бронь того же слота в SERIALIZABLE транзакции
	serializationFailure = "40001"
)

var columns = []string{
	"id",
	"doctor_id",
	"slot_date",
	"slot_time",
	"patient_id",
	"appointment_id",
	"status",
	"created_at",
	"updated_at",
}

// Repository репозиторий броней слотов, сделанных через шлюз
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Reserve создает бронь со статусом held.
// Вызывать внутри сериализуемой транзакции: проверка занятости берёт FOR UPDATE.
func (r *Repository) Reserve(ctx context.Context, slot *domain.BookedSlot) (*domain.BookedSlot, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	// 1. Проверяем, что слот свободен
	selectBuilder := psqlbuilder.Select("id").
		From(table).
		Where(squirrel.Eq{
			"doctor_id": slot.DoctorID,
			"slot_date": slot.SlotDate,
			"slot_time": slot.SlotTime,
		}).
		Where(squirrel.NotEq{"status": domain.ReservationReleased}).
		Limit(1)

	if txmanager.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Reserve - build select query: %v", ErrBuildQuery, err)
	}

	var existingID int64
	err = executor.QueryRowContext(ctx, query, args...).Scan(&existingID)
	switch {
	case err == nil:
		return nil, ErrSlotTaken
	case IsConflict(err):
		return nil, ErrSlotTaken
	case !errors.Is(err, sql.ErrNoRows):
		return nil, fmt.Errorf("%w: Reserve - check slot: %v", ErrExecQuery, err)
	}

	// 2. Вставляем бронь
	query, args, err = psqlbuilder.Insert(table).
		Columns("doctor_id", "slot_date", "slot_time", "patient_id", "status").
		Values(slot.DoctorID, slot.SlotDate, slot.SlotTime, slot.PatientID, domain.ReservationHeld).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Reserve - build insert query: %v", ErrBuildQuery, err)
	}

	created := *slot
	created.Status = domain.ReservationHeld

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&created.ID, &createdAt, &updatedAt)
	if err != nil {
		if IsConflict(err) {
			return nil, ErrSlotTaken
		}
		return nil, fmt.Errorf("%w: Reserve - execute insert: %v", ErrExecQuery, err)
	}

	created.CreatedAt = createdAt.Time
	created.UpdatedAt = updatedAt.Time

	return &created, nil
}

// IsConflict проверяет, что ошибка драйвера означает конкурентную бронь слота.
// Ошибка сериализации может прийти и на COMMIT, поэтому проверяется по всей цепочке.
func IsConflict(err error) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	return pqErr.Code == uniqueViolation || pqErr.Code == serializationFailure
}

// AttachAppointment связывает бронь с записью бэкенда и переводит её в booked
func (r *Repository) AttachAppointment(ctx context.Context, id int64, appointmentID string) error {
	return r.update(ctx, "AttachAppointment",
		psqlbuilder.Update(table).
			Set("appointment_id", appointmentID).
			Set("status", domain.ReservationBooked).
			Set("updated_at", squirrel.Expr("NOW()")).
			Where(squirrel.Eq{"id": id}),
		true,
	)
}

// Release освобождает бронь по id
func (r *Repository) Release(ctx context.Context, id int64) error {
	return r.update(ctx, "Release",
		psqlbuilder.Update(table).
			Set("status", domain.ReservationReleased).
			Set("updated_at", squirrel.Expr("NOW()")).
			Where(squirrel.Eq{"id": id}),
		true,
	)
}

// ReleaseByAppointment освобождает бронь записи. Отсутствие брони не ошибка:
// запись могла быть создана в обход шлюза.
func (r *Repository) ReleaseByAppointment(ctx context.Context, appointmentID string) error {
	return r.update(ctx, "ReleaseByAppointment",
		psqlbuilder.Update(table).
			Set("status", domain.ReservationReleased).
			Set("updated_at", squirrel.Expr("NOW()")).
			Where(squirrel.Eq{"appointment_id": appointmentID}).
			Where(squirrel.NotEq{"status": domain.ReservationReleased}),
		false,
	)
}

// ListActiveByDoctor возвращает активные брони врача в диапазоне дат включительно
func (r *Repository) ListActiveByDoctor(ctx context.Context, doctorID string, from, to time.Time) ([]*domain.BookedSlot, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"doctor_id": doctorID}).
		Where(squirrel.GtOrEq{"slot_date": from}).
		Where(squirrel.LtOrEq{"slot_date": to}).
		Where(squirrel.NotEq{"status": domain.ReservationReleased}).
		OrderBy("slot_date ASC", "created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveByDoctor - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveByDoctor - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanSlots(rows)
}

func (r *Repository) update(ctx context.Context, op string, builder squirrel.UpdateBuilder, mustAffect bool) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: %s - build update query: %v", ErrBuildQuery, op, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute update: %v", ErrExecQuery, op, err)
	}

	if !mustAffect {
		return nil
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}
	if rowsAffected == 0 {
		return ErrReservationNotFound
	}
	return nil
}

// scanSlots сканирует результаты запроса в слайс броней
func (r *Repository) scanSlots(rows *sql.Rows) ([]*domain.BookedSlot, error) {
	slots := make([]*domain.BookedSlot, 0)

	for rows.Next() {
		var slot domain.BookedSlot
		var appointmentID sql.NullString
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&slot.ID,
			&slot.DoctorID,
			&slot.SlotDate,
			&slot.SlotTime,
			&slot.PatientID,
			&appointmentID,
			&slot.Status,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanSlots - scan row: %v", ErrScanRow, err)
		}

		if appointmentID.Valid {
			slot.AppointmentID = &appointmentID.String
		}
		slot.CreatedAt = createdAt.Time
		slot.UpdatedAt = updatedAt.Time

		slots = append(slots, &slot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanSlots - rows error: %v", ErrScanRow, err)
	}

	return slots, nil
}
