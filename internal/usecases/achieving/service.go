package achieving

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-achievement-api/infrastructure/repository"
	"github.com/vfg2006/sales-achievement-api/internal/domain"
	"github.com/vfg2006/sales-achievement-api/internal/reconciliation"
	"github.com/vfg2006/sales-achievement-api/pkg/apiErrors"
	"github.com/vfg2006/sales-achievement-api/pkg/utils"
)

// UploadFile é um arquivo recebido no envio
type UploadFile struct {
	Name    string
	Content io.Reader
}

type UploadRequest struct {
	Period  domain.Period
	Factor  int
	Replace bool
	Sales   []UploadFile
	Returns *UploadFile
}

type UploadResult struct {
	Batch   *domain.UploadBatch `json:"batch"`
	Summary *Summary            `json:"summary"`
}

type Service struct {
	reconciler            *Reconciler
	reader                SheetReader
	salespersonRepository repository.SalespersonRepository
	achievementRepository repository.MonthlyAchievementRepository
	targetRepository      repository.MonthlyTargetRepository
	batchRepository       repository.UploadBatchRepository
}

func NewService(
	reconciler *Reconciler,
	reader SheetReader,
	salespersonRepository repository.SalespersonRepository,
	achievementRepository repository.MonthlyAchievementRepository,
	targetRepository repository.MonthlyTargetRepository,
	batchRepository repository.UploadBatchRepository,
) Achiever {
	return &Service{
		reconciler:            reconciler,
		reader:                reader,
		salespersonRepository: salespersonRepository,
		achievementRepository: achievementRepository,
		targetRepository:      targetRepository,
		batchRepository:       batchRepository,
	}
}

// ProcessUpload lê as planilhas, concilia, soma ao acumulado e registra o lote
func (s *Service) ProcessUpload(ctx context.Context, request *UploadRequest) (*UploadResult, error) {
	if request == nil || len(request.Sales) == 0 {
		return nil, NewAchievementError(ErrMissingSalesFile, apiErrors.ErrMissingRequiredData, "")
	}

	input := &Input{
		Period:  request.Period,
		Factor:  request.Factor,
		Replace: request.Replace,
		Sales:   make([]Sheet, 0, len(request.Sales)),
	}

	files := make([]string, 0, len(request.Sales)+1)
	for _, file := range request.Sales {
		sheet, err := s.readSheet(file)
		if err != nil {
			return nil, err
		}
		input.Sales = append(input.Sales, *sheet)
		files = append(files, file.Name)
	}

	if request.Returns != nil {
		sheet, err := s.readSheet(*request.Returns)
		if err != nil {
			return nil, err
		}
		input.Returns = sheet
		files = append(files, request.Returns.Name)
	}

	summary, err := s.reconciler.Reconcile(ctx, input)
	if err != nil {
		return nil, err
	}

	id, err := utils.GenerateBatchID()
	if err != nil {
		return nil, NewAchievementError(ErrGenerateID, apiErrors.ErrInternalServer, err.Error())
	}

	batch := &domain.UploadBatch{
		ID:               id,
		Year:             request.Period.Year,
		Month:            request.Period.Month,
		Files:            files,
		Replaced:         request.Replace,
		Factor:           request.Factor,
		ProcessedBlocks:  len(summary.Salespeople),
		SkippedBlocks:    len(summary.SkippedSalespeople),
		ReturnsExcluded:  summary.ReturnsExcluded,
		OwnAchievement:   summary.Own,
		OtherAchievement: summary.Other,
	}

	// O acumulado já foi gravado; falha aqui só perde o histórico do lote
	if err := s.batchRepository.Save(batch); err != nil {
		logrus.WithError(err).WithField("batch_id", batch.ID).Error("Erro ao registrar lote de upload")
		return nil, NewAchievementError(ErrSaveBatch, apiErrors.ErrDatabaseOperation, err.Error())
	}

	return &UploadResult{Batch: batch, Summary: summary}, nil
}

func (s *Service) readSheet(file UploadFile) (*Sheet, error) {
	rows, err := s.reader.ReadFirstSheet(file.Name, file.Content)
	if err != nil {
		return nil, NewAchievementError(ErrInvalidSpreadsheet, apiErrors.ErrInvalidFormat, err.Error())
	}

	return &Sheet{Name: file.Name, Rows: rows}, nil
}

// GetMonthlyReport cruza metas e acumulados do período para cada vendedor cadastrado
func (s *Service) GetMonthlyReport(period domain.Period) ([]*domain.AchievementReport, error) {
	if err := period.Validate(); err != nil {
		return nil, NewAchievementError(err, apiErrors.ErrInvalidRequest, "")
	}

	salespeople, err := s.salespersonRepository.List()
	if err != nil {
		return nil, NewAchievementError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao listar vendedores")
	}

	targets, err := s.targetRepository.GetByPeriod(period)
	if err != nil {
		return nil, NewAchievementError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao buscar metas do período")
	}

	achievements, err := s.achievementRepository.GetByPeriod(period)
	if err != nil {
		return nil, NewAchievementError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao buscar acumulados do período")
	}

	targetsByID := make(map[string]*domain.MonthlyTarget, len(targets))
	for _, target := range targets {
		targetsByID[target.SalespersonID] = target
	}

	achievementsByID := make(map[string]*domain.MonthlyAchievement, len(achievements))
	for _, achievement := range achievements {
		achievementsByID[achievement.SalespersonID] = achievement
	}

	report := make([]*domain.AchievementReport, 0)
	for _, salesperson := range salespeople {
		target, hasTarget := targetsByID[salesperson.ID]
		achievement, hasAchievement := achievementsByID[salesperson.ID]
		if !hasTarget && !hasAchievement {
			continue
		}

		item := &domain.AchievementReport{
			SalespersonID:    salesperson.ID,
			SalespersonName:  salesperson.Name,
			Brand:            salesperson.Brand,
			Section:          salesperson.Section,
			Period:           period.String(),
			OwnTarget:        decimal.Zero,
			OtherTarget:      decimal.Zero,
			TotalTarget:      decimal.Zero,
			OwnAchievement:   decimal.Zero,
			OtherAchievement: decimal.Zero,
			TotalAchievement: decimal.Zero,
		}

		if hasTarget {
			item.OwnTarget = target.OwnTarget
			item.OtherTarget = target.OtherTarget
			item.TotalTarget = target.TotalTarget()
		}

		if hasAchievement {
			item.OwnAchievement = achievement.OwnAchievement
			item.OtherAchievement = achievement.OtherAchievement
			item.TotalAchievement = achievement.TotalAchievement
		}

		item.OwnPercent = utils.Percent(item.OwnAchievement, item.OwnTarget)
		item.OtherPercent = utils.Percent(item.OtherAchievement, item.OtherTarget)
		item.TotalPercent = utils.Percent(item.TotalAchievement, item.TotalTarget)

		report = append(report, item)
	}

	sort.SliceStable(report, func(i, j int) bool {
		return report[i].TotalAchievement.GreaterThan(report[j].TotalAchievement)
	})

	return report, nil
}

// GetAvailablePeriods retorna os períodos (meses e anos) com acumulados registrados
func (s *Service) GetAvailablePeriods() (*domain.AvailablePeriods, error) {
	periods, err := s.achievementRepository.GetAllPeriods()
	if err != nil {
		return nil, NewAchievementError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao buscar períodos disponíveis")
	}

	yearMap := make(map[string]bool)
	monthMap := make(map[string]bool)

	for _, period := range periods {
		// Extrair ano e mês do período (formato mm-yyyy)
		if len(period) == 7 {
			monthMap[period[:2]] = true
			yearMap[period[3:]] = true
		}
	}

	years := make([]string, 0, len(yearMap))
	for year := range yearMap {
		years = append(years, year)
	}

	months := make([]string, 0, len(monthMap))
	for month := range monthMap {
		months = append(months, month)
	}

	sort.Strings(years)
	sort.Strings(months)

	return &domain.AvailablePeriods{
		Periods: periods,
		Years:   years,
		Months:  months,
	}, nil
}

func (s *Service) ClearPeriod(ctx context.Context, period domain.Period) (int64, error) {
	if err := period.Validate(); err != nil {
		return 0, NewAchievementError(err, apiErrors.ErrInvalidRequest, "")
	}

	deleted, err := s.achievementRepository.ClearPeriod(ctx, period)
	if err != nil {
		return 0, NewAchievementError(ErrClearPeriod, apiErrors.ErrDatabaseOperation, err.Error())
	}

	logrus.WithFields(logrus.Fields{
		"period":  period.String(),
		"deleted": deleted,
	}).Info("Acumulados do período removidos")

	return deleted, nil
}

func (s *Service) ListBatches(period *domain.Period) ([]*domain.UploadBatch, error) {
	if period != nil {
		if err := period.Validate(); err != nil {
			return nil, NewAchievementError(err, apiErrors.ErrInvalidRequest, "")
		}
	}

	batches, err := s.batchRepository.List(period)
	if err != nil {
		return nil, NewAchievementError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao listar lotes de upload")
	}

	return batches, nil
}

func (s *Service) SetTarget(request *domain.UpsertTargetRequest) (*domain.MonthlyTarget, error) {
	if request == nil || request.SalespersonID == "" {
		return nil, NewAchievementError(ErrSalespersonNotFound, apiErrors.ErrMissingRequiredData, "salesperson_id é obrigatório")
	}

	period, err := domain.NewPeriod(request.Year, request.Month)
	if err != nil {
		return nil, NewAchievementError(err, apiErrors.ErrInvalidRequest, "")
	}

	if request.OwnTarget.IsNegative() || request.OtherTarget.IsNegative() {
		return nil, NewAchievementError(ErrInvalidTarget, apiErrors.ErrInvalidRequest, "")
	}

	salesperson, err := s.salespersonRepository.GetByID(request.SalespersonID)
	if err != nil {
		return nil, NewAchievementError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao buscar vendedor")
	}
	if salesperson == nil {
		return nil, NewAchievementError(ErrSalespersonNotFound, apiErrors.ErrNotFound, request.SalespersonID)
	}

	target := &domain.MonthlyTarget{
		SalespersonID: salesperson.ID,
		Year:          period.Year,
		Month:         period.Month,
		OwnTarget:     request.OwnTarget,
		OtherTarget:   request.OtherTarget,
	}

	if err := s.targetRepository.SaveOrUpdate(target); err != nil {
		return nil, NewAchievementError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao salvar meta")
	}

	return target, nil
}

func (s *Service) ListSalespeople() ([]*domain.Salesperson, error) {
	salespeople, err := s.salespersonRepository.List()
	if err != nil {
		return nil, NewAchievementError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao listar vendedores")
	}

	return salespeople, nil
}

// UpsertSalesperson grava o vendedor pelo nome canônico, o mesmo usado para casar os blocos das planilhas
func (s *Service) UpsertSalesperson(request *domain.UpsertSalespersonRequest) (*domain.Salesperson, error) {
	if request == nil {
		return nil, NewAchievementError(ErrSalespersonNameRequired, apiErrors.ErrMissingRequiredData, "")
	}

	name := reconciliation.CanonicalName(request.Name)
	if name == "" {
		return nil, NewAchievementError(ErrSalespersonNameRequired, apiErrors.ErrMissingRequiredData, "")
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, NewAchievementError(ErrGenerateID, apiErrors.ErrInternalServer, err.Error())
	}

	salesperson := &domain.Salesperson{
		ID:      id,
		Name:    name,
		Section: strings.TrimSpace(request.Section),
	}

	if request.Brand != nil {
		if brand := strings.ToUpper(strings.TrimSpace(*request.Brand)); brand != "" {
			salesperson.Brand = &brand
		}
	}

	saved, err := s.salespersonRepository.SaveOrUpdate(salesperson)
	if err != nil {
		return nil, NewAchievementError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation,
			fmt.Sprintf("Falha ao salvar vendedor %s", name))
	}

	return saved, nil
}
