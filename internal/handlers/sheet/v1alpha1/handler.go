// Package v1alpha1 handles the grpc service interface
package v1alpha1

import (
	"context"

	"github.com/KirkDiggler/godbound-api/internal/entities/godbound"
	"github.com/KirkDiggler/godbound-api/internal/errors"
	"github.com/KirkDiggler/godbound-api/internal/orchestrators/sheet"
)

// HandlerConfig holds dependencies for the handler
type HandlerConfig struct {
	SheetService sheet.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c == nil || c.SheetService == nil {
		return errors.InvalidArgument("sheet service is required")
	}
	return nil
}

// Handler implements the sheet gRPC service
type Handler struct {
	sheetService sheet.Service
}

var _ SheetServiceServer = (*Handler)(nil)

// NewHandler creates a new handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		sheetService: cfg.SheetService,
	}, nil
}

// Dispatch routes a UI intent to the sheet controller
func (h *Handler) Dispatch(ctx context.Context, req *DispatchRequest) (*DispatchResponse, error) {
	if req == nil {
		return nil, errors.ToGRPCError(errors.InvalidArgument("request is required"))
	}

	resp, err := h.sheetService.Dispatch(ctx, &sheet.Request{
		Intent:    sheet.Intent(req.Intent),
		UserID:    req.UserID,
		SubjectID: req.SubjectID,
		Params:    req.Params,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &DispatchResponse{Result: resp}, nil
}

// ResolveAttributeCheck rolls an attribute check for a subject
func (h *Handler) ResolveAttributeCheck(
	ctx context.Context,
	req *ResolveAttributeCheckRequest,
) (*ResolveCheckResponse, error) {
	if req == nil {
		return nil, errors.ToGRPCError(errors.InvalidArgument("request is required"))
	}

	output, err := h.sheetService.RollAttributeCheck(ctx, &sheet.RollAttributeCheckInput{
		UserID:     req.UserID,
		SubjectID:  req.SubjectID,
		Attribute:  req.Attribute,
		Difficulty: req.DifficultyModifier,
		Auxiliary:  req.AuxiliaryModifier,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &ResolveCheckResponse{
		Result:  output.Result,
		Message: output.Message,
	}, nil
}

// ResolveSavingThrow rolls a saving throw for a subject
func (h *Handler) ResolveSavingThrow(
	ctx context.Context,
	req *ResolveSavingThrowRequest,
) (*ResolveCheckResponse, error) {
	if req == nil {
		return nil, errors.ToGRPCError(errors.InvalidArgument("request is required"))
	}

	output, err := h.sheetService.RollSavingThrow(ctx, &sheet.RollSavingThrowInput{
		UserID:     req.UserID,
		SubjectID:  req.SubjectID,
		Save:       req.Save,
		Difficulty: req.DifficultyModifier,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &ResolveCheckResponse{
		Result:  output.Result,
		Message: output.Message,
	}, nil
}

// CreateSubject creates a new sheet
func (h *Handler) CreateSubject(ctx context.Context, req *CreateSubjectRequest) (*SubjectResponse, error) {
	if req == nil {
		return nil, errors.ToGRPCError(errors.InvalidArgument("request is required"))
	}

	output, err := h.sheetService.CreateSubject(ctx, &sheet.CreateSubjectInput{
		UserID:     req.UserID,
		Name:       req.Name,
		Type:       godbound.SubjectType(req.Type),
		Level:      req.Level,
		Attributes: req.Attributes,
		Effort:     req.Effort,
		HP:         req.HP,
		HitDice:    req.HitDice,
		Morale:     req.Morale,
		TokenID:    req.TokenID,
		Image:      req.Image,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &SubjectResponse{Subject: output.Subject}, nil
}

// GetSubject reads a sheet
func (h *Handler) GetSubject(ctx context.Context, req *GetSubjectRequest) (*SubjectResponse, error) {
	if req == nil {
		return nil, errors.ToGRPCError(errors.InvalidArgument("request is required"))
	}

	output, err := h.sheetService.GetSubject(ctx, &sheet.GetSubjectInput{
		SubjectID: req.SubjectID,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &SubjectResponse{Subject: output.Subject}, nil
}

// RenderSheet returns the view model of a sheet
func (h *Handler) RenderSheet(ctx context.Context, req *RenderSheetRequest) (*RenderSheetResponse, error) {
	if req == nil {
		return nil, errors.ToGRPCError(errors.InvalidArgument("request is required"))
	}

	output, err := h.sheetService.Render(ctx, &sheet.RenderInput{
		UserID:    req.UserID,
		SubjectID: req.SubjectID,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &RenderSheetResponse{View: output.View}, nil
}

// ListMessages reads a subject's chat log
func (h *Handler) ListMessages(ctx context.Context, req *ListMessagesRequest) (*ListMessagesResponse, error) {
	if req == nil {
		return nil, errors.ToGRPCError(errors.InvalidArgument("request is required"))
	}
	if req.Limit < 0 {
		return nil, errors.ToGRPCError(errors.InvalidArgument("limit cannot be negative"))
	}

	output, err := h.sheetService.ListMessages(ctx, &sheet.ListMessagesInput{
		SubjectID: req.SubjectID,
		Limit:     req.Limit,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &ListMessagesResponse{Messages: output.Messages}, nil
}

// ClearMessages clears a subject's chat log
func (h *Handler) ClearMessages(ctx context.Context, req *ClearMessagesRequest) (*ClearMessagesResponse, error) {
	if req == nil {
		return nil, errors.ToGRPCError(errors.InvalidArgument("request is required"))
	}

	output, err := h.sheetService.ClearMessages(ctx, &sheet.ClearMessagesInput{
		UserID:    req.UserID,
		SubjectID: req.SubjectID,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &ClearMessagesResponse{Deleted: output.Deleted}, nil
}
