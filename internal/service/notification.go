package service

import (
	"context"
	"fmt"
	"html"
	"strings"

	"bizcelona-backend/internal/config"
	"bizcelona-backend/internal/domain"
	"bizcelona-backend/internal/repository"
)

type notificationService struct {
	profileRepo repository.ProfileRepository
	appRepo     repository.ApplicationRepository
	mailer      Mailer
	email       config.EmailConfig
	baseURL     string
}

func NewNotificationService(
	profileRepo repository.ProfileRepository,
	appRepo repository.ApplicationRepository,
	mailer Mailer,
	email config.EmailConfig,
	baseURL string,
) NotificationService {
	return &notificationService{
		profileRepo: profileRepo,
		appRepo:     appRepo,
		mailer:      mailer,
		email:       email,
		baseURL:     baseURL,
	}
}

func (s *notificationService) NotifyNewUser(ctx context.Context, userID string) (string, error) {
	profile, err := s.profileRepo.GetByID(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("failed to get profile: %w", err)
	}

	name := profile.FullName
	if name == "" {
		name = profile.Email
	}

	body := fmt.Sprintf(`%s
    <h1>👋 New User Signup</h1>
    <p>A new user has created an account on Bizcelona:</p>
    %s%s%s
    <p><strong>⏳ Next Step:</strong> This user will likely complete their membership application soon.</p>
%s`,
		emailHeader,
		field("Name", name),
		field("Email", profile.Email),
		field("Created", profile.CreatedOn.Format("Monday, January 2, 2006 15:04")),
		emailFooter)

	return s.mailer.Send(ctx, &Email{
		From:     s.email.From,
		FromName: s.email.FromName,
		To:       s.email.AdminEmails,
		Subject:  "New User Signup: " + name,
		HTML:     body,
	})
}

func (s *notificationService) NotifyNewApplication(ctx context.Context, applicationID string) (string, error) {
	app, err := s.appRepo.GetByID(ctx, applicationID)
	if err != nil {
		return "", fmt.Errorf("failed to get application: %w", err)
	}

	contributes := "No"
	if app.ContributorInterest {
		contributes = "Yes ✅"
	}

	body := fmt.Sprintf(`%s
    <h1>🎯 New Bizcelona Application</h1>
    <p>A new member has applied to join Bizcelona:</p>
    %s%s%s%s%s%s%s
    <p><a href="%s/admin/applications/%s">Review Application</a></p>
%s`,
		emailHeader,
		field("Full Name", app.FullName),
		field("Email", app.Email),
		field("WhatsApp", app.WhatsappNumber),
		field("Business/Employer", app.EmployerBusiness),
		field("Job Title", app.JobTitle),
		field("About", app.WhatDoYouDo),
		field("Willing to Contribute", contributes),
		s.baseURL, app.ID,
		emailFooter)

	return s.mailer.Send(ctx, &Email{
		From:     s.email.From,
		FromName: s.email.FromName,
		To:       s.email.AdminEmails,
		Subject:  "New Application: " + app.FullName,
		HTML:     body,
	})
}

func (s *notificationService) NotifyApplicationApproved(ctx context.Context, applicationID string) (string, error) {
	app, err := s.appRepo.GetByID(ctx, applicationID)
	if err != nil {
		return "", fmt.Errorf("failed to get application: %w", err)
	}
	if app.Status != domain.ApplicationStatusApproved {
		return "", domain.ErrInvalidTransition
	}

	body := fmt.Sprintf(`%s
    <h1>Welcome to Bizcelona! 🎉</h1>
    <p><strong>✅ APPLICATION APPROVED</strong></p>
%s
    <p><strong>Next Steps:</strong> Watch your WhatsApp for the group invite. We'll be in touch very soon!</p>
%s`,
		emailHeader,
		welcomeMessageHTML(app.FullName, app.ContributorInterest),
		emailFooter)

	return s.mailer.Send(ctx, &Email{
		From:     s.email.ApprovalFrom,
		FromName: s.email.ApprovalName,
		To:       []string{app.Email},
		CC:       []string{s.email.ApprovalCC},
		Subject:  "🎉 Welcome to Bizcelona - Application Approved!",
		HTML:     body,
	})
}

const emailHeader = `<!DOCTYPE html>
<html>
  <body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">`

const emailFooter = `    <p style="color: #9ca3af; font-size: 12px; text-align: center;">Bizcelona - Barcelona's Premier Business Community</p>
  </body>
</html>`

func field(label, value string) string {
	if strings.TrimSpace(value) == "" {
		value = "Not provided"
	}
	return fmt.Sprintf("    <p><strong>%s:</strong> %s</p>\n", label, html.EscapeString(value))
}
