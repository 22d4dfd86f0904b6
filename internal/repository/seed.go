package repository

import (
	"fmt"
	"time"

	"github.com/betacom-hq/backoffice/internal/domain"
)

// SeedDemoData loads the demo fixtures: the six standard roles, three
// departments, a small org chart of profiles with credentials, a shop
// roster, daily report and revenue rows for the current and previous
// month, exercise progress, and a few banners.
//
// The admin sign-in is admin@betacom.vn / admin123; every other seeded
// account uses password123.
func (s *MemoryStore) SeedDemoData() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()

	roles := []struct {
		name domain.RoleName
		desc string
	}{
		{domain.RoleAdmin, "Full access to every module"},
		{domain.RoleLeader, "Leads a business unit"},
		{domain.RoleDepartmentHead, "Runs a department"},
		{domain.RoleSpecialist, "Operates shops and reports"},
		{domain.RoleTrainee, "Onboarding, learning exercises only"},
		{domain.RoleDeleted, "Soft-delete sentinel"},
	}
	for _, r := range roles {
		desc := r.desc
		s.roles = append(s.roles, &domain.Role{
			ID:          s.newID(),
			Name:        r.name,
			Description: &desc,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
	}

	ecommerce := s.seedDepartment("E-commerce Operations", now)
	marketing := s.seedDepartment("Marketing", now)
	training := s.seedDepartment("Training", now)

	admin := s.seedProfile(seedProfileInput{
		email: "admin@betacom.vn", password: "admin123",
		fullName: "Nguyen Van An", phone: "0901000001",
		role: domain.RoleAdmin, joinOffset: -720, createdAt: now.Add(-9 * 24 * time.Hour),
	})
	leader := s.seedProfile(seedProfileInput{
		email: "leader@betacom.vn", password: "password123",
		fullName: "Tran Thi Binh", phone: "0901000002",
		role: domain.RoleLeader, managerID: &admin.ID,
		joinOffset: -540, createdAt: now.Add(-8 * 24 * time.Hour),
	})
	ecomHead := s.seedProfile(seedProfileInput{
		email: "ecom.head@betacom.vn", password: "password123",
		fullName: "Le Minh Chau", phone: "0901000003",
		role: domain.RoleDepartmentHead, departmentID: &ecommerce.ID, managerID: &leader.ID,
		joinOffset: -400, createdAt: now.Add(-7 * 24 * time.Hour),
	})
	mktHead := s.seedProfile(seedProfileInput{
		email: "marketing.head@betacom.vn", password: "password123",
		fullName: "Pham Quoc Dat", phone: "0901000004",
		role: domain.RoleDepartmentHead, departmentID: &marketing.ID, managerID: &leader.ID,
		joinOffset: -380, createdAt: now.Add(-6 * 24 * time.Hour),
	})
	spec1 := s.seedProfile(seedProfileInput{
		email: "huong.nguyen@betacom.vn", password: "password123",
		fullName: "Nguyen Thu Huong", phone: "0901000005",
		role: domain.RoleSpecialist, departmentID: &ecommerce.ID, managerID: &ecomHead.ID,
		joinOffset: -200, createdAt: now.Add(-5 * 24 * time.Hour),
	})
	spec2 := s.seedProfile(seedProfileInput{
		email: "tuan.vo@betacom.vn", password: "password123",
		fullName: "Vo Anh Tuan", phone: "0901000006",
		role: domain.RoleSpecialist, departmentID: &ecommerce.ID, managerID: &ecomHead.ID,
		joinOffset: -150, createdAt: now.Add(-4 * 24 * time.Hour),
	})
	trainee := s.seedProfile(seedProfileInput{
		email: "trainee@betacom.vn", password: "password123",
		fullName: "Dang Thi Em", phone: "0901000007",
		role: domain.RoleTrainee, departmentID: &training.ID, managerID: &mktHead.ID,
		joinOffset: -30, createdAt: now.Add(-3 * 24 * time.Hour),
	})
	// A soft-deleted profile: invisible to every listing
	s.seedProfile(seedProfileInput{
		email: "former@betacom.vn", password: "password123",
		fullName: "Bui Van Cu", phone: "0901000008",
		role: domain.RoleDeleted, joinOffset: -600, createdAt: now.Add(-2 * 24 * time.Hour),
	})

	shopSeeds := []struct {
		name   string
		status domain.ShopStatus
		owner  *string
		dept   *string
	}{
		{"Betacom Fashion", domain.ShopStatusOperating, &spec1.ID, &ecommerce.ID},
		{"Betacom Home & Living", domain.ShopStatusOperating, &spec2.ID, &ecommerce.ID},
		{"Shoe Garden", domain.ShopStatusOperating, &spec1.ID, &ecommerce.ID},
		{"Beauty Corner", domain.ShopStatusNew, &spec2.ID, &marketing.ID},
		{"Old Outlet", domain.ShopStatusStopped, nil, nil},
	}
	shops := make([]*domain.Shop, 0, len(shopSeeds))
	for _, sd := range shopSeeds {
		shop := &domain.Shop{
			ID:           s.newID(),
			Name:         sd.name,
			Status:       sd.status,
			ProfileID:    sd.owner,
			DepartmentID: sd.dept,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		s.shops = append(s.shops, shop)
		shops = append(shops, shop)
	}

	// Daily reports and uploaded revenue for the current and previous
	// month, operating shops only. Values are derived from the indexes
	// so reseeding is deterministic for a fixed clock.
	months := []time.Time{
		time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC),
		time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -1, 0),
	}
	for si, shop := range shops {
		if shop.Status != domain.ShopStatusOperating {
			continue
		}
		for mi, monthStart := range months {
			for day := 0; day < 10; day++ {
				date := monthStart.AddDate(0, 0, day)
				if date.After(now) {
					break
				}
				revenue := float64(1_000_000 + si*250_000 + mi*100_000 + day*50_000)
				orders := 20 + si*5 + day
				s.reports = append(s.reports, &domain.ComprehensiveReport{
					ID:               s.newID(),
					ShopID:           strPtr(shop.ID),
					ReportDate:       date,
					Revenue:          revenue,
					Orders:           orders,
					Visits:           orders * 12,
					Buyers:           orders - 2,
					CancelledOrders:  day % 3,
					ReturnedOrders:   day % 4,
					FeasibleGoal:     float64(30_000_000 + si*5_000_000),
					BreakthroughGoal: float64(45_000_000 + si*5_000_000),
					CreatedAt:        date,
					UpdatedAt:        date,
				})
				uploader := shop.ProfileID
				if uploader == nil {
					uploader = &admin.ID
				}
				s.revenues = append(s.revenues, &domain.ShopRevenueRecord{
					ID:         s.newID(),
					ShopID:     shop.ID,
					RecordDate: date,
					Revenue:    revenue,
					UploadedBy: *uploader,
					CreatedAt:  date,
				})
			}
		}
	}

	for i, ex := range []string{"onboarding-101", "listing-basics", "ads-fundamentals"} {
		s.progress = append(s.progress, &domain.ExerciseProgress{
			ID:               s.newID(),
			UserID:           trainee.ID,
			ExerciseID:       ex,
			Completed:        i == 0,
			VideoWatched:     i <= 1,
			TimeSpentSeconds: 600 + i*300,
			ViewCount:        1 + i,
			CreatedAt:        now,
			UpdatedAt:        now,
		})
	}

	for i, title := range []string{"Summer Sale Hero", "Mid-month Flash Deal", "New Arrivals Strip"} {
		s.banners = append(s.banners, &domain.Banner{
			ID:        s.newID(),
			Title:     title,
			Category:  "homepage",
			ImageData: fmt.Sprintf("data:image/png;base64,iVBORw0KGgoAAAANSUhEUg%02d", i),
			SortOrder: i + 1,
			CreatedAt: now,
			UpdatedAt: now,
		})
	}
}

func (s *MemoryStore) seedDepartment(name string, now time.Time) *domain.Department {
	department := &domain.Department{
		ID:        s.newID(),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.departments = append(s.departments, department)
	return department
}

type seedProfileInput struct {
	email        string
	password     string
	fullName     string
	phone        string
	role         domain.RoleName
	departmentID *string
	managerID    *string
	joinOffset   int // days before the seed clock
	createdAt    time.Time
}

func (s *MemoryStore) seedProfile(input seedProfileInput) *domain.Profile {
	profile := &domain.Profile{
		ID:           s.newID(),
		Email:        input.email,
		FullName:     input.fullName,
		Phone:        input.phone,
		Role:         input.role,
		WorkType:     domain.WorkTypeFulltime,
		DepartmentID: input.departmentID,
		ManagerID:    input.managerID,
		JoinDate:     input.createdAt.AddDate(0, 0, input.joinOffset),
		CreatedAt:    input.createdAt,
		UpdatedAt:    input.createdAt,
	}
	s.profiles = append(s.profiles, profile)
	s.credentials = append(s.credentials, &domain.Credential{
		Email:     input.email,
		Password:  input.password,
		ProfileID: profile.ID,
	})
	return profile
}
