// Command seed recreates the attendance schema and loads demo data: ten
// employees, one entry/exit punch pair each, and two dashboard accounts
// (admin/admin123, demo/demo123). The whole load runs in one transaction,
// so a half-seeded database is never left behind.
package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/datasynergy/asistencia-backend-go/internal/config"
	"github.com/datasynergy/asistencia-backend-go/internal/domain/attendance"
	"github.com/datasynergy/asistencia-backend-go/internal/pkg/database"
	"github.com/datasynergy/asistencia-backend-go/internal/repository/postgresql"
	"golang.org/x/crypto/bcrypt"
)

var schema = []string{
	`DROP TABLE IF EXISTS registros_asistencia`,
	`DROP TABLE IF EXISTS empleados`,
	`DROP TABLE IF EXISTS usuarios_sistema`,
	`CREATE TABLE empleados (
		id BIGSERIAL PRIMARY KEY,
		nombre VARCHAR(120) NOT NULL,
		documento VARCHAR(40) NOT NULL UNIQUE,
		cargo VARCHAR(80) NOT NULL,
		telefono VARCHAR(32) NULL
	)`,
	`CREATE TABLE registros_asistencia (
		id_registro BIGSERIAL PRIMARY KEY,
		id_empleado BIGINT NOT NULL REFERENCES empleados(id),
		id_dispositivo VARCHAR(50) NOT NULL,
		tipo_evento VARCHAR(10) NOT NULL CHECK (tipo_evento IN ('entrada', 'salida')),
		fecha_hora TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		validado_biometricamente BOOLEAN NOT NULL DEFAULT TRUE,
		observaciones TEXT NULL
	)`,
	`CREATE INDEX idx_registros_fecha_hora ON registros_asistencia (fecha_hora)`,
	`CREATE INDEX idx_registros_empleado_fecha ON registros_asistencia (id_empleado, fecha_hora)`,
	`CREATE TABLE usuarios_sistema (
		id BIGSERIAL PRIMARY KEY,
		usuario VARCHAR(60) NOT NULL UNIQUE,
		password_hash VARCHAR(255) NOT NULL,
		nombre VARCHAR(120) NULL
	)`,
}

var (
	firstNames = []string{
		"Ana", "Luis", "María", "Carlos", "Diana", "Jorge", "Valentina", "Andrés", "Paula", "Santiago",
		"Laura", "Felipe", "Camila", "Sebastián", "Natalia", "Ricardo", "Daniela", "Juan", "Carolina", "Miguel",
	}
	lastNames = []string{"García", "Rodríguez", "Martínez", "López", "González", "Hernández", "Pérez", "Sánchez", "Ramírez", "Torres"}
	positions = []string{"Analista de Datos", "Desarrollador", "Científico de Datos", "Ingeniero de IA", "MLOps", "QA", "Product Designer", "Scrum Master"}
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		log.Fatal("Error connecting to database: ", err)
	}
	defer db.Close()

	var employees, records int

	err = postgresql.WithTransaction(context.Background(), db, func(ctx context.Context) error {
		q := postgresql.GetQuerier(ctx, db)
		for _, stmt := range schema {
			if _, err := q.Exec(ctx, stmt); err != nil {
				return fmt.Errorf("create schema: %w", err)
			}
		}

		employeeIDs, err := seedEmployees(ctx, db)
		if err != nil {
			return fmt.Errorf("seed employees: %w", err)
		}
		employees = len(employeeIDs)

		records, err = seedAttendance(ctx, db, employeeIDs)
		if err != nil {
			return fmt.Errorf("seed attendance: %w", err)
		}

		if err := seedSystemUsers(ctx, db); err != nil {
			return fmt.Errorf("seed system users: %w", err)
		}
		return nil
	})
	if err != nil {
		log.Fatal("Error seeding database: ", err)
	}

	fmt.Printf("Seed completado: %d empleados y %d registros en registros_asistencia.\n", employees, records)
	fmt.Println("Usuarios creados: admin/admin123 y demo/demo123")
}

func seedEmployees(ctx context.Context, db *database.DB) ([]int64, error) {
	q := postgresql.GetQuerier(ctx, db)

	var ids []int64
	for i := 0; i < 10; i++ {
		name := firstNames[rand.Intn(len(firstNames))] + " " + lastNames[rand.Intn(len(lastNames))]
		document := fmt.Sprintf("%d", 10000000+rand.Intn(90000000))
		position := positions[rand.Intn(len(positions))]
		phone := fmt.Sprintf("+57 %d", 3000000000+rand.Int63n(1000000000))

		var id int64
		err := q.QueryRow(ctx, `
			INSERT INTO empleados (nombre, documento, cargo, telefono)
			VALUES ($1, $2, $3, $4)
			RETURNING id
		`, name, document, position, phone).Scan(&id)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// seedAttendance writes one entry/exit pair per employee on a random recent
// day, eight hours apart, exit within three hours after the work-day end.
func seedAttendance(ctx context.Context, db *database.DB, employeeIDs []int64) (int, error) {
	q := postgresql.GetQuerier(ctx, db)

	workDayEnd, err := time.Parse("15:04:05", attendance.WorkDayEnd)
	if err != nil {
		return 0, fmt.Errorf("parse work day end: %w", err)
	}

	records := 0
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	for _, employeeID := range employeeIDs {
		day := today.AddDate(0, 0, -rand.Intn(21))
		exitAt := day.Add(time.Duration(workDayEnd.Hour()+rand.Intn(3))*time.Hour + time.Duration(rand.Intn(60))*time.Minute)
		entryAt := exitAt.Add(-8 * time.Hour)
		device := fmt.Sprintf("DISP-%02d", 1+rand.Intn(99))

		for _, punch := range []struct {
			kind string
			at   time.Time
		}{
			{attendance.EventEntry, entryAt},
			{attendance.EventExit, exitAt},
		} {
			_, err := q.Exec(ctx, `
				INSERT INTO registros_asistencia (id_empleado, id_dispositivo, tipo_evento, fecha_hora, validado_biometricamente)
				VALUES ($1, $2, $3, $4, TRUE)
			`, employeeID, device, punch.kind, punch.at)
			if err != nil {
				return records, err
			}
			records++
		}
	}
	return records, nil
}

func seedSystemUsers(ctx context.Context, db *database.DB) error {
	q := postgresql.GetQuerier(ctx, db)

	users := []struct {
		username string
		password string
		name     string
	}{
		{"admin", "admin123", "Administrador"},
		{"demo", "demo123", "Usuario Demo"},
	}

	for _, u := range users {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		_, err = q.Exec(ctx, `
			INSERT INTO usuarios_sistema (usuario, password_hash, nombre)
			VALUES ($1, $2, $3)
		`, u.username, string(hash), u.name)
		if err != nil {
			return err
		}
	}
	return nil
}
