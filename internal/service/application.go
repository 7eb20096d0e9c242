package service

import (
	"context"
	"fmt"
	"strings"

	"bizcelona-backend/internal/domain"
	"bizcelona-backend/internal/logger"
	"bizcelona-backend/internal/repository"
	"bizcelona-backend/internal/validation"
)

type applicationService struct {
	appRepo     repository.ApplicationRepository
	profileRepo repository.ProfileRepository
	memberRepo  repository.MemberRepository
	notifier    NotificationService
}

func NewApplicationService(
	appRepo repository.ApplicationRepository,
	profileRepo repository.ProfileRepository,
	memberRepo repository.MemberRepository,
	notifier NotificationService,
) ApplicationService {
	return &applicationService{
		appRepo:     appRepo,
		profileRepo: profileRepo,
		memberRepo:  memberRepo,
		notifier:    notifier,
	}
}

func (s *applicationService) Submit(ctx context.Context, userID string, form *domain.ApplicationForm) (*domain.Application, error) {
	// No insert is attempted while any rule fails.
	if errs := validation.ValidateApplication(form); len(errs) > 0 {
		return nil, errs
	}

	app := &domain.Application{
		UserID:              userID,
		FullName:            form.FullName,
		Email:               form.Email,
		WhatsappNumber:      validation.CleanWhatsapp(form.WhatsappNumber),
		EmployerBusiness:    form.EmployerBusiness,
		JobTitle:            form.JobTitle,
		IndustrySector:      form.IndustrySector,
		WhatDoYouDo:         form.WhatDoYouDo,
		HopingToGet:         form.HopingToGet,
		HopeToBring:         form.HopeToBring,
		LinkedinProfile:     form.LinkedinProfile,
		HowHeardAbout:       form.HowHeardAbout,
		ContributorInterest: form.ContributorInterest,
		ConsentGiven:        true,
		Status:              domain.ApplicationStatusSubmitted,
	}
	if info := strings.TrimSpace(form.AdditionalInfo); info != "" {
		app.AdditionalInfo = &info
	}

	// The repository maps constraint violations (duplicate submission,
	// check constraints) to the fixed human-readable domain errors.
	if err := s.appRepo.Create(ctx, app); err != nil {
		return nil, err
	}

	// Admin alert is best effort; the submission already succeeded.
	if s.notifier != nil {
		if _, err := s.notifier.NotifyNewApplication(ctx, app.ID); err != nil {
			logger.Error("Failed to send new-application notification", "application_id", app.ID, "error", err)
		}
	}

	return app, nil
}

func (s *applicationService) StatusForUser(ctx context.Context, userID string) (*domain.Application, error) {
	app, err := s.appRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get application: %w", err)
	}
	return app, nil
}

func (s *applicationService) MembershipForUser(ctx context.Context, userID string) (*domain.Member, error) {
	member, err := s.memberRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get member: %w", err)
	}
	return member, nil
}

func (s *applicationService) Prefill(ctx context.Context, userID string) (*domain.Profile, error) {
	profile, err := s.profileRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return profile, nil
}
