package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/tokengate/ticketing-service/internal/api/dto"
	"github.com/tokengate/ticketing-service/internal/domain"
)

func parseInt(val string, def int) int {
	if val == "" {
		return def
	}
	parsed, err := strconv.Atoi(val)
	if err != nil || parsed <= 0 {
		return def
	}
	return parsed
}

func pageWindow(c *fiber.Ctx) (page, pageSize, offset int) {
	page = parseInt(c.Query("page"), 1)
	pageSize = parseInt(c.Query("page_size"), 20)
	return page, pageSize, (page - 1) * pageSize
}

func userResponse(user *domain.User) dto.UserResponse {
	return dto.UserResponse{
		ID:            user.ID,
		WalletAddress: user.WalletAddress,
		Role:          user.Role,
		IsVerified:    user.IsVerified,
		DisplayName:   user.DisplayName,
		CreatedAt:     user.CreatedAt,
	}
}

func eventResponse(event *domain.Event) dto.EventResponse {
	return dto.EventResponse{
		ID:          event.ID,
		OrganizerID: event.OrganizerID,
		Name:        event.Name,
		Description: event.Description,
		Venue:       event.Venue,
		StartDate:   event.StartDate,
		EndDate:     event.EndDate,
		IsPublished: event.IsPublished,
		TotalSold:   event.TotalSold,
		CreatedAt:   event.CreatedAt,
	}
}

func templateResponse(template *domain.TicketTemplate) dto.TemplateResponse {
	return dto.TemplateResponse{
		ID:          template.ID,
		EventID:     template.EventID,
		Name:        template.Name,
		Price:       template.Price,
		TotalSupply: template.TotalSupply,
		SoldCount:   template.SoldCount,
		TierRank:    template.TierRank,
		IsSoulbound: template.IsSoulbound,
		SaleStartAt: template.SaleStartAt,
		SaleEndAt:   template.SaleEndAt,
		CreatedAt:   template.CreatedAt,
	}
}

func ticketResponse(ticket *domain.Ticket) dto.TicketResponse {
	return dto.TicketResponse{
		ID:            ticket.ID,
		TokenID:       ticket.TokenID,
		TemplateID:    ticket.TemplateID,
		EventID:       ticket.EventID,
		OwnerWallet:   ticket.OwnerWallet,
		OriginalOwner: ticket.OriginalOwner,
		QRHash:        ticket.QRHash,
		MetadataURI:   ticket.MetadataURI,
		Status:        ticket.Status,
		IsCheckedIn:   ticket.IsCheckedIn,
		CheckedInAt:   ticket.CheckedInAt,
		CheckedInBy:   ticket.CheckedInBy,
		CreatedAt:     ticket.CreatedAt,
		UpdatedAt:     ticket.UpdatedAt,
	}
}

func transactionResponse(txn *domain.Transaction) dto.TransactionResponse {
	return dto.TransactionResponse{
		ID:         txn.ID,
		TicketID:   txn.TicketID,
		Type:       txn.Type,
		FromWallet: txn.FromWallet,
		ToWallet:   txn.ToWallet,
		TxHash:     txn.TxHash,
		CreatedAt:  txn.CreatedAt,
	}
}

func checkinLogResponse(log *domain.CheckinLog) dto.CheckinLogResponse {
	return dto.CheckinLogResponse{
		ID:           log.ID,
		TicketID:     log.TicketID,
		EventID:      log.EventID,
		ScannedBy:    log.ScannedBy,
		DeviceInfo:   log.DeviceInfo,
		LocationInfo: log.LocationInfo,
		CreatedAt:    log.CreatedAt,
	}
}
