package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/datasynergy/asistencia-backend-go/internal/domain/chat"
	"github.com/datasynergy/asistencia-backend-go/internal/pkg/database"
)

type chatSnapshotRepositoryImpl struct {
	db *database.DB
}

func NewChatSnapshotRepository(db *database.DB) chat.SnapshotRepository {
	return &chatSnapshotRepositoryImpl{db: db}
}

// RecentRecords implements chat.SnapshotRepository.
func (r *chatSnapshotRepositoryImpl) RecentRecords(ctx context.Context, limit int) ([]chat.RecordSnapshot, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT e.nombre, e.documento, e.cargo,
			ra.tipo_evento, ra.fecha_hora, ra.validado_biometricamente
		FROM registros_asistencia ra
		JOIN empleados e ON e.id = ra.id_empleado
		ORDER BY ra.fecha_hora DESC
		LIMIT $1
	`

	rows, err := q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get recent records: %w", err)
	}
	defer rows.Close()

	var records []chat.RecordSnapshot
	for rows.Next() {
		var rec chat.RecordSnapshot
		var occurredAt time.Time
		if err := rows.Scan(&rec.Nombre, &rec.Documento, &rec.Cargo, &rec.TipoEvento, &occurredAt, &rec.ValidadoBiometricamente); err != nil {
			return nil, fmt.Errorf("failed to scan record snapshot: %w", err)
		}
		rec.FechaHora = occurredAt.Format("2006-01-02 15:04:05")
		records = append(records, rec)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}
