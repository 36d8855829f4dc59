package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/online-edu/platform/internal/app"
	"github.com/online-edu/platform/internal/config"
	"github.com/online-edu/platform/internal/document"
	"github.com/online-edu/platform/internal/model"
	"github.com/online-edu/platform/internal/repository"
	"github.com/online-edu/platform/internal/system"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := app.NewLogger(cfg.Environment)
	defer logger.Sync()

	command := "save"
	if len(os.Args) > 1 {
		command = os.Args[1]
	}
	path := cfg.DataFile
	if len(os.Args) > 2 {
		path = os.Args[2]
	}

	sys := system.New(logger)

	switch command {
	case "save":
		if err := seed(sys); err != nil {
			logger.Fatal("Failed to seed demo data", zap.Error(err))
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			logger.Fatal("Failed to create data directory", zap.Error(err))
		}
		if err := sys.Save(path); err != nil {
			logger.Fatal("Failed to save system", zap.Error(err))
		}
	case "load":
		if err := sys.Load(path); err != nil {
			logger.Fatal("Failed to load system", zap.Error(err))
		}
	case "archive":
		if err := archive(sys, cfg, logger, path); err != nil {
			logger.Fatal("Failed to archive system", zap.Error(err))
		}
	default:
		fmt.Fprintf(os.Stderr, "usage: edu [save|load|archive] [path]\n")
		os.Exit(2)
	}
}

// archive сохраняет систему в файл и кладёт его содержимое в архив
// снапшотов Postgres.
func archive(sys *system.System, cfg *config.Config, logger *zap.Logger, path string) error {
	if !cfg.ArchiveEnabled() {
		return fmt.Errorf("DB_DSN is not set, snapshot archive is disabled")
	}

	ctx := context.Background()

	pool, err := pgxpool.New(ctx, cfg.DBDSN)
	if err != nil {
		return fmt.Errorf("connect to postgres: %w", err)
	}
	defer pool.Close()

	migrator, err := app.NewMigrator(pool, cfg.MigrationsPath)
	if err != nil {
		return err
	}
	defer migrator.Close()
	if err := migrator.Run(ctx); err != nil {
		return err
	}

	if err := seed(sys); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}
	if err := sys.Save(path); err != nil {
		return err
	}

	payload, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read saved file: %w", err)
	}

	snapshot := &model.Snapshot{
		Format:  document.FormatForPath(path),
		Payload: payload,
	}
	repo := repository.NewSnapshotRepository(pool)
	if err := repo.Create(ctx, snapshot); err != nil {
		return err
	}

	logger.Info("Snapshot archived",
		zap.Int64("snapshot_id", snapshot.ID),
		zap.String("format", snapshot.Format),
		zap.Int("size", len(snapshot.Payload)),
	)
	return nil
}

// seed наполняет систему демонстрационными данными, прогоняя основные
// операции платформы.
func seed(sys *system.System) error {
	tutor, err := model.NewTutor("Анна", "Петрова", 35, "+79001234567", "anna@example.com", 1, "Математика", 10, "Готовлю к экзаменам")
	if err != nil {
		return err
	}
	if err := sys.AddTutor(tutor); err != nil {
		return err
	}

	student, err := model.NewStudent("Иван", "Иванов", 16, "+79007654321", "ivan@example.com", 2, 10)
	if err != nil {
		return err
	}
	if err := sys.AddStudent(student); err != nil {
		return err
	}

	course, err := sys.CreateCourse(tutor, "Алгебра 10 класс", "Математика", "Подготовка к контрольным", "пн/ср 17:00", "1500 руб.", model.CourseStatusActive)
	if err != nil {
		return err
	}
	if err := sys.Enroll(student, course); err != nil {
		return err
	}

	lesson, err := sys.ScheduleLesson(course, "Квадратные уравнения", "Дискриминант и теорема Виета", "17:00", "18:00", "2024-09-02")
	if err != nil {
		return err
	}
	if err := sys.AddLessonToSchedule(student.Schedule, lesson); err != nil {
		return err
	}
	if err := sys.AddLessonToSchedule(tutor.Schedule, lesson); err != nil {
		return err
	}

	homework, err := sys.AddHomework(lesson, "Решить 10 уравнений", "Задания 1-10 из учебника", "2024-09-09", 100)
	if err != nil {
		return err
	}
	sub, err := sys.SubmitHomework(student, homework, "Решения во вложении", "2024-09-08")
	if err != nil {
		return err
	}
	if err := sub.SetScore(92, "Отлично, одна арифметическая ошибка"); err != nil {
		return err
	}

	test, err := sys.CreateTest(lesson, "Квадратные уравнения: самопроверка")
	if err != nil {
		return err
	}
	q1, err := model.NewQuestion("Сколько корней у уравнения с D > 0?", []string{"Один", "Два", "Ни одного"}, 1)
	if err != nil {
		return err
	}
	if err := test.AddQuestion(q1); err != nil {
		return err
	}
	q2, err := model.NewQuestion("Чему равна сумма корней по теореме Виета?", []string{"-b/a", "c/a", "b/a"}, 0)
	if err != nil {
		return err
	}
	if err := test.AddQuestion(q2); err != nil {
		return err
	}

	payment, err := sys.CreatePayment(student, "september", 2024)
	if err != nil {
		return err
	}
	if err := payment.AddCourse(course); err != nil {
		return err
	}
	return sys.ProcessPayment(payment)
}
