package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"pneuma-faq-bot/pkg/response"
)

// List godoc
// @Summary     List deals for a day
// @Description Returns the deals running on the given day, recurring deals included.
// @Tags        Deals
// @Produce     json
// @Param       day query string false "Day expression (today, tomorrow, next friday, 2024-05-01). Default: today"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/deals [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.List(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "deal.delivery.http.List: %v", err)
		h.fail(c, err)
		return
	}

	response.OK(c, h.newListResp(output))
}

// Create godoc
// @Summary     Create or replace a deal
// @Description Stores a deal. An empty day makes it recurring.
// @Tags        Deals
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Deal"
// @Success     200 {object} createResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/deals [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "deal.delivery.http.Create: %v", err)
		h.fail(c, err)
		return
	}

	response.OK(c, h.newCreateResp(output))
}

// Delete godoc
// @Summary     Delete a deal
// @Tags        Deals
// @Produce     json
// @Param       id path string true "Deal ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/deals/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		response.Error(c, errors.New("id is required"), nil)
		return
	}

	if err := h.uc.Delete(ctx, id); err != nil {
		h.l.Errorf(ctx, "deal.delivery.http.Delete: %v", err)
		h.fail(c, err)
		return
	}

	response.OK(c, nil)
}

func (h *handler) fail(c *gin.Context, err error) {
	status, msg := h.mapError(err)
	if status == http.StatusInternalServerError {
		response.InternalError(c, err)
		return
	}
	response.ErrorWithStatus(c, status, errors.New(msg))
}
