package service

import (
	"errors"

	"gorm.io/gorm"

	stageModel "karmaty_backend/internals/features/stages/model"
)

var ErrStageExists = errors.New("stage already exists")

type StageService struct {
	DB *gorm.DB
}

func NewStageService(db *gorm.DB) *StageService {
	return &StageService{DB: db}
}

// List returns all stages in display order.
func (s *StageService) List() ([]stageModel.StageModel, error) {
	var stages []stageModel.StageModel
	err := s.DB.Order("stage_position asc").Find(&stages).Error
	return stages, err
}

// StudentStages excludes the staff sentinel stage.
func (s *StageService) StudentStages() ([]stageModel.StageModel, error) {
	var stages []stageModel.StageModel
	err := s.DB.Where("stage_is_staff = ?", false).
		Order("stage_position asc").Find(&stages).Error
	return stages, err
}

func (s *StageService) FindByName(name string) (*stageModel.StageModel, error) {
	var stage stageModel.StageModel
	if err := s.DB.First(&stage, "stage_name = ?", name).Error; err != nil {
		return nil, err
	}
	return &stage, nil
}

// Add appends a stage at the end of the order. Dynamically added stages
// carry no PIN, which deliberately leaves them ungated.
func (s *StageService) Add(name string) (*stageModel.StageModel, error) {
	if _, err := s.FindByName(name); err == nil {
		return nil, ErrStageExists
	}

	var maxPos int
	s.DB.Model(&stageModel.StageModel{}).
		Select("COALESCE(MAX(stage_position), -1)").Scan(&maxPos)

	stage := stageModel.StageModel{
		StageName:     name,
		StagePosition: maxPos + 1,
	}
	if err := s.DB.Create(&stage).Error; err != nil {
		return nil, err
	}
	return &stage, nil
}

func (s *StageService) Delete(name string) (bool, error) {
	res := s.DB.Where("stage_name = ?", name).Delete(&stageModel.StageModel{})
	return res.RowsAffected > 0, res.Error
}

// Move swaps a stage with its neighbour in the display order.
// direction is "up" or "down"; moving past either end is a no-op.
func (s *StageService) Move(name, direction string) error {
	stage, err := s.FindByName(name)
	if err != nil {
		return err
	}

	var neighbour stageModel.StageModel
	q := s.DB.Model(&stageModel.StageModel{})
	switch direction {
	case "up":
		q = q.Where("stage_position < ?", stage.StagePosition).Order("stage_position desc")
	case "down":
		q = q.Where("stage_position > ?", stage.StagePosition).Order("stage_position asc")
	default:
		return errors.New("direction must be up or down")
	}
	if err := q.First(&neighbour).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&stageModel.StageModel{}).
			Where("stage_id = ?", stage.StageID).
			Update("stage_position", neighbour.StagePosition).Error; err != nil {
			return err
		}
		return tx.Model(&stageModel.StageModel{}).
			Where("stage_id = ?", neighbour.StageID).
			Update("stage_position", stage.StagePosition).Error
	})
}

// Unlock runs one PromptOpen→Submit cycle for the named stage on behalf
// of the actor. found=false when the stage does not exist.
func (s *StageService) Unlock(role, ownStage, name, pin string) (unlocked, found bool, err error) {
	stage, err := s.FindByName(name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, false, nil
		}
		return false, false, err
	}

	gate := ResolveGate(role, ownStage, name, stage.StagePIN)
	gate.Prompt()
	return gate.Submit(pin), true, nil
}
