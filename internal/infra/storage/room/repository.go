package room

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/pkg/dbmetrics"
	"github.com/m04kA/SMC-RentalService/pkg/psqlbuilder"
)

// uniqueViolation код ошибки PostgreSQL для нарушения UNIQUE
const uniqueViolation = "23505"

var roomColumns = []string{
	"id",
	"number",
	"building",
	"area",
	"price",
	"status",
	"amenities",
	"description",
	"tenant_name",
	"tenant_phone",
	"tenant_email",
	"tenant_id_card",
	"tenant_birth_date",
	"tenant_hometown",
	"tenant_members",
	"contract_start_date",
	"contract_end_date",
	"contract_deposit",
	"cccd_front",
	"cccd_back",
	"notification_sent",
	"last_notification_date",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с комнатами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория комнат
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую комнату. Комната всегда создается свободной, без арендатора и договора
func (r *Repository) Create(ctx context.Context, room *domain.Room) (*domain.Room, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("rooms").
		Columns(
			"number",
			"building",
			"area",
			"price",
			"status",
			"amenities",
			"description",
		).
		Values(
			room.Number,
			room.Building,
			room.Area,
			room.Price,
			string(room.Status),
			pq.Array(room.Amenities),
			room.Description,
		).
		Suffix("RETURNING id, area, price, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&room.ID,
		&room.Area,
		&room.Price,
		&room.CreatedAt,
		&room.UpdatedAt,
	)
	if isUniqueViolation(err) {
		return nil, ErrDuplicateRoom
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return room, nil
}

// GetByID получает комнату по ID.
// Внутри транзакции строка блокируется (FOR UPDATE), чтобы переходы статуса
// не пересекались с параллельными запросами
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(roomColumns...).
		From("rooms").
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	room, err := scanRoom(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRoomNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan room: %v", ErrScanRow, err)
	}

	return room, nil
}

// List возвращает все комнаты в порядке создания.
// Фильтрация по статусу, зданию и строке поиска выполняется в сервисе (domain.FilterRooms),
// чтобы у сервера и клиента была одна реализация
func (r *Repository) List(ctx context.Context) ([]*domain.Room, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(roomColumns...).
		From("rooms").
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	rooms := make([]*domain.Room, 0)
	for rows.Next() {
		room, err := scanRoom(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan room: %v", ErrScanRow, err)
		}
		rooms = append(rooms, room)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows iteration: %v", ErrScanRow, err)
	}

	return rooms, nil
}

// UpdateDetails обновляет описательные поля комнаты. Статус, арендатор и договор не меняются
func (r *Repository) UpdateDetails(ctx context.Context, room *domain.Room) (*domain.Room, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("rooms").
		Set("number", room.Number).
		Set("building", room.Building).
		Set("area", room.Area).
		Set("price", room.Price).
		Set("amenities", pq.Array(room.Amenities)).
		Set("description", room.Description).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": room.ID}).
		Suffix("RETURNING area, price, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: UpdateDetails - build update query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&room.Area, &room.Price, &room.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRoomNotFound
	}
	if isUniqueViolation(err) {
		return nil, ErrDuplicateRoom
	}
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateDetails - execute update: %v", ErrExecQuery, err)
	}

	return room, nil
}

// UpdateStatus переводит комнату из статуса from в статус to.
// Используется для переходов available <-> booked, данных аренды у этих статусов нет
func (r *Repository) UpdateStatus(ctx context.Context, id int64, from, to domain.RoomStatus) error {
	query, args, err := psqlbuilder.Update("rooms").
		Set("status", string(to)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "status": string(from)}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	return r.execConditional(ctx, "UpdateStatus", query, args)
}

// Occupy заселяет арендатора: записывает данные арендатора и договора и переводит комнату в occupied.
// Обновление проходит только если комната свободна или забронирована
func (r *Repository) Occupy(ctx context.Context, room *domain.Room) error {
	if room.Tenant == nil || room.Contract == nil {
		return domain.ErrTenancyInvariant
	}

	members, err := encodeMembers(room.Tenant.Members)
	if err != nil {
		return err
	}

	tenant := room.Tenant
	contract := room.Contract

	query, args, err := psqlbuilder.Update("rooms").
		Set("status", string(domain.RoomOccupied)).
		Set("tenant_name", tenant.FullName).
		Set("tenant_phone", tenant.Phone).
		Set("tenant_email", tenant.Email).
		Set("tenant_id_card", tenant.IDCard).
		Set("tenant_birth_date", tenant.BirthDate).
		Set("tenant_hometown", tenant.Hometown).
		Set("tenant_members", members).
		Set("contract_start_date", contract.StartDate).
		Set("contract_end_date", contract.EndDate).
		Set("contract_deposit", contract.Deposit).
		Set("cccd_front", contract.CCCDFront).
		Set("cccd_back", contract.CCCDBack).
		Set("notification_sent", false).
		Set("last_notification_date", nil).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{
			"id":     room.ID,
			"status": []string{string(domain.RoomAvailable), string(domain.RoomBooked)},
		}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Occupy - build update query: %v", ErrBuildQuery, err)
	}

	return r.execConditional(ctx, "Occupy", query, args)
}

// ExtendContract переносит дату окончания договора и сбрасывает отметку об отправленном напоминании
func (r *Repository) ExtendContract(ctx context.Context, id int64, endDate time.Time) error {
	query, args, err := psqlbuilder.Update("rooms").
		Set("contract_end_date", endDate).
		Set("notification_sent", false).
		Set("last_notification_date", nil).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "status": string(domain.RoomOccupied)}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: ExtendContract - build update query: %v", ErrBuildQuery, err)
	}

	return r.execConditional(ctx, "ExtendContract", query, args)
}

// ClearTenancy завершает аренду: удаляет данные арендатора и договора, комната снова свободна
func (r *Repository) ClearTenancy(ctx context.Context, id int64) error {
	query, args, err := psqlbuilder.Update("rooms").
		SetMap(map[string]interface{}{
			"status":                 string(domain.RoomAvailable),
			"tenant_name":            nil,
			"tenant_phone":           nil,
			"tenant_email":           nil,
			"tenant_id_card":         nil,
			"tenant_birth_date":      nil,
			"tenant_hometown":        nil,
			"tenant_members":         nil,
			"contract_start_date":    nil,
			"contract_end_date":      nil,
			"contract_deposit":       nil,
			"cccd_front":             nil,
			"cccd_back":              nil,
			"notification_sent":      false,
			"last_notification_date": nil,
			"updated_at":             squirrel.Expr("NOW()"),
		}).
		Where(squirrel.Eq{"id": id, "status": string(domain.RoomOccupied)}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: ClearTenancy - build update query: %v", ErrBuildQuery, err)
	}

	return r.execConditional(ctx, "ClearTenancy", query, args)
}

// MarkNotificationSent отмечает, что арендатору отправлено напоминание об окончании договора
func (r *Repository) MarkNotificationSent(ctx context.Context, id int64, date time.Time) error {
	query, args, err := psqlbuilder.Update("rooms").
		Set("notification_sent", true).
		Set("last_notification_date", date).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "status": string(domain.RoomOccupied)}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: MarkNotificationSent - build update query: %v", ErrBuildQuery, err)
	}

	return r.execConditional(ctx, "MarkNotificationSent", query, args)
}

// Delete удаляет комнату. Занятую комнату удалить нельзя: условие проверяется в самом запросе
func (r *Repository) Delete(ctx context.Context, id int64) error {
	query, args, err := psqlbuilder.Delete("rooms").
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.NotEq{"status": string(domain.RoomOccupied)}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	return r.execConditional(ctx, "Delete", query, args)
}

// execConditional выполняет запрос с условием на статус и возвращает ErrStateConflict,
// если ни одна строка не изменилась
func (r *Repository) execConditional(ctx context.Context, op, query string, args []interface{}) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute: %v", ErrExecQuery, op, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - rows affected: %v", ErrExecQuery, op, err)
	}
	if affected == 0 {
		return ErrStateConflict
	}

	return nil
}

func scanRoom(row rowScanner) (*domain.Room, error) {
	var (
		room         domain.Room
		status       string
		amenities    []string
		tenantName   sql.NullString
		tenantPhone  sql.NullString
		tenantEmail  sql.NullString
		tenantIDCard sql.NullString
		birthDate    sql.NullTime
		hometown     sql.NullString
		members      []byte
		startDate    sql.NullTime
		endDate      sql.NullTime
		deposit      decimal.NullDecimal
		cccdFront    sql.NullString
		cccdBack     sql.NullString
		sent         bool
		lastSent     sql.NullTime
	)

	err := row.Scan(
		&room.ID,
		&room.Number,
		&room.Building,
		&room.Area,
		&room.Price,
		&status,
		pq.Array(&amenities),
		&room.Description,
		&tenantName,
		&tenantPhone,
		&tenantEmail,
		&tenantIDCard,
		&birthDate,
		&hometown,
		&members,
		&startDate,
		&endDate,
		&deposit,
		&cccdFront,
		&cccdBack,
		&sent,
		&lastSent,
		&room.CreatedAt,
		&room.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	room.Status = domain.RoomStatus(status)
	room.Amenities = amenities
	if room.Amenities == nil {
		room.Amenities = []string{}
	}

	// Данные аренды читаются только у занятой комнаты
	if room.Status != domain.RoomOccupied {
		return &room, nil
	}

	room.Tenant = &domain.Tenant{
		FullName: tenantName.String,
		Phone:    tenantPhone.String,
		Email:    tenantEmail.String,
		IDCard:   tenantIDCard.String,
		Hometown: hometown.String,
	}
	if birthDate.Valid {
		bd := domain.DateOnly(birthDate.Time)
		room.Tenant.BirthDate = &bd
	}
	if len(members) > 0 {
		if err := json.Unmarshal(members, &room.Tenant.Members); err != nil {
			return nil, fmt.Errorf("decode tenant members: %w", err)
		}
	}

	room.Contract = &domain.Contract{
		StartDate:        domain.DateOnly(startDate.Time),
		EndDate:          domain.DateOnly(endDate.Time),
		Deposit:          deposit.Decimal,
		CCCDFront:        cccdFront.String,
		CCCDBack:         cccdBack.String,
		NotificationSent: sent,
	}
	if lastSent.Valid {
		ls := domain.DateOnly(lastSent.Time)
		room.Contract.LastNotificationDate = &ls
	}

	return &room, nil
}

func encodeMembers(members []domain.TenantMember) ([]byte, error) {
	if len(members) == 0 {
		return []byte("[]"), nil
	}
	data, err := json.Marshal(members)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncodeMembers, err)
	}
	return data, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}
