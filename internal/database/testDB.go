package database

import (
	"context"
	"fmt"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	// Load env
	_ "github.com/joho/godotenv/autoload"

	m "wagehire-backend/internal/model"
	"wagehire-backend/internal/utilities"
)

var testDBInstance *DBinstanceStruct
var teardown func(context.Context) error

// Exported test users & records
var (
	TestAdminUser  m.User
	TestCandidate1 m.User
	TestCandidate2 m.User

	// Shared plain password of every seeded user
	TestSeedPassword = "SeedPass123!"

	// Seeded interviews: 1 scheduled (candidate 1), 2 uncertain (candidate 1),
	// 3 completed with feedback (candidate 2)
	TestInterview1 m.Interview
	TestInterview2 m.Interview
	TestInterview3 m.Interview

	TestFeedback1 m.InterviewFeedback
)

func runPostgresContainer() (func(context.Context) error, *DBinstanceStruct, error) {
	var (
		dbName = "database"
		dbPwd  = "password"
		dbUser = "user"
	)

	dbContainer, err := postgres.Run(
		context.Background(),
		"postgres:latest",
		postgres.WithDatabase(dbName),
		postgres.WithUsername(dbUser),
		postgres.WithPassword(dbPwd),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(5*time.Second)),
	)
	if err != nil {
		return nil, nil, err
	}

	dbHost, err := dbContainer.Host(context.Background())
	if err != nil {
		return dbContainer.Terminate, nil, err
	}

	dbPort, err := dbContainer.MappedPort(context.Background(), nat.Port("5432/tcp"))
	if err != nil {
		return dbContainer.Terminate, nil, err
	}

	config := &DBConfig{
		useConstr: true,
		Constr:    fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable", dbHost, dbPort.Port(), dbUser, dbPwd, dbName),
	}

	db, err := NewDBInstance(config)
	if err != nil {
		return dbContainer.Terminate, nil, err
	}

	return dbContainer.Terminate, db, nil
}

// GetTestDB starts a PostgreSQL test container, seeds it, and returns a
// teardown function, the DB instance, and any error encountered during setup.
// The container is shared across the package's tests.
func GetTestDB() (func(context.Context) error, *DBinstanceStruct, error) {

	if testDBInstance != nil && teardown != nil {
		return teardown, testDBInstance, nil
	}

	terminate, db, err := runPostgresContainer()
	if err != nil {
		return terminate, nil, err
	}

	if err := seedTestData(db); err != nil {
		_ = terminate(context.Background())
		return nil, nil, err
	}

	testDBInstance = db
	teardown = terminate

	return terminate, db, nil
}

// GetEmptyTestDB starts a dedicated unseeded container. Used by tests that
// need a pristine users table, such as the first-user-becomes-admin rule.
func GetEmptyTestDB() (func(context.Context) error, *DBinstanceStruct, error) {
	return runPostgresContainer()
}

// seedTestData inserts sample users, interviews, and feedback if empty.
func seedTestData(db *DBinstanceStruct) error {
	var userCount int64
	if err := db.Model(&m.User{}).Count(&userCount).Error; err != nil {
		return err
	}

	if userCount > 0 {
		return loadTestData(db)
	}

	// Pre-hash shared password for all seeded users
	hashedPwd, errHash := utilities.HashPassword(TestSeedPassword)
	if errHash != nil {
		return errHash
	}

	years1, years2 := 2.5, 6.0
	phone1 := "0100000001"
	position2 := "Senior Backend Engineer"

	users := []m.User{
		{
			ID:       uuid.New(),
			Email:    "admin@example.com",
			Password: hashedPwd,
			Role:     m.RoleAdmin,
			EditableProfileInfo: m.EditableProfileInfo{
				Name: "Seed Admin",
			},
		},
		{
			ID:       uuid.New(),
			Email:    "candidate1@example.com",
			Password: hashedPwd,
			Role:     m.RoleCandidate,
			EditableProfileInfo: m.EditableProfileInfo{
				Name:            "Alice Candidate",
				Phone:           &phone1,
				ExperienceYears: &years1,
				Skills:          pq.StringArray{"Go", "SQL"},
			},
		},
		{
			ID:       uuid.New(),
			Email:    "candidate2@example.com",
			Password: hashedPwd,
			Role:     m.RoleCandidate,
			EditableProfileInfo: m.EditableProfileInfo{
				Name:            "Bob Candidate",
				CurrentPosition: &position2,
				ExperienceYears: &years2,
				Skills:          pq.StringArray{"Python", "Kubernetes", "Terraform"},
			},
		},
	}

	if err := db.Create(&users).Error; err != nil {
		return err
	}

	TestAdminUser = users[0]
	TestCandidate1 = users[1]
	TestCandidate2 = users[2]

	nextWeek := time.Now().Add(7 * 24 * time.Hour).Truncate(time.Second)
	lastWeek := time.Now().Add(-7 * 24 * time.Hour).Truncate(time.Second)
	dur60, dur90 := 60, 90
	loc := "Remote (Zoom)"

	interviews := []m.Interview{
		{
			CandidateID: TestCandidate1.ID,
			EditableInterviewInfo: m.EditableInterviewInfo{
				CompanyName:   "TechNova",
				JobTitle:      "Backend Engineer",
				ScheduledDate: &nextWeek,
				Duration:      &dur60,
				Status:        m.StatusScheduled,
				InterviewType: "technical",
				RoundNumber:   1,
				Location:      &loc,
				OtherURLs:     pq.StringArray{"https://technova.example.com/careers"},
			},
		},
		{
			CandidateID: TestCandidate1.ID,
			EditableInterviewInfo: m.EditableInterviewInfo{
				CompanyName:   "DataForge",
				JobTitle:      "Platform Engineer",
				Status:        m.StatusUncertain,
				InterviewType: "screening",
				RoundNumber:   1,
			},
		},
		{
			CandidateID: TestCandidate2.ID,
			EditableInterviewInfo: m.EditableInterviewInfo{
				CompanyName:   "CloudWrights",
				JobTitle:      "SRE",
				ScheduledDate: &lastWeek,
				Duration:      &dur90,
				Status:        m.StatusCompleted,
				InterviewType: "final",
				RoundNumber:   3,
			},
		},
	}

	if err := db.Create(&interviews).Error; err != nil {
		return err
	}

	TestInterview1 = interviews[0]
	TestInterview2 = interviews[1]
	TestInterview3 = interviews[2]

	feedback := m.InterviewFeedback{
		InterviewID:         TestInterview3.ID,
		CandidateID:         TestCandidate2.ID,
		OverallRating:       4,
		TechnicalRating:     5,
		CommunicationRating: 4,
		DifficultyRating:    3,
		ExperienceRating:    4,
		FeedbackText:        "Deep systems questions, friendly panel.",
		Recommendation:      m.RecommendationHire,
	}
	if err := db.Create(&feedback).Error; err != nil {
		return err
	}
	TestFeedback1 = feedback

	return nil
}

// loadTestData populates exported variables when records already exist.
func loadTestData(db *DBinstanceStruct) error {
	if err := db.First(&TestAdminUser, "email = ?", "admin@example.com").Error; err != nil {
		return err
	}
	if err := db.First(&TestCandidate1, "email = ?", "candidate1@example.com").Error; err != nil {
		return err
	}
	if err := db.First(&TestCandidate2, "email = ?", "candidate2@example.com").Error; err != nil {
		return err
	}

	var interviews []m.Interview
	if err := db.Order("id ASC").Limit(3).Find(&interviews).Error; err != nil {
		return err
	}
	if len(interviews) > 0 {
		TestInterview1 = interviews[0]
	}
	if len(interviews) > 1 {
		TestInterview2 = interviews[1]
	}
	if len(interviews) > 2 {
		TestInterview3 = interviews[2]
	}

	_ = db.First(&TestFeedback1, "interview_id = ?", TestInterview3.ID).Error

	return nil
}
