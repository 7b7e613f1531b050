package models

import (
	"fmt"
	"net/http"
)

type ErrorWoo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Data    struct {
		Status int `json:"status"`
		Params struct {
			Display string `json:"display"`
		} `json:"params"`
		Details struct {
			Display struct {
				Code    string      `json:"code"`
				Message string      `json:"message"`
				Data    interface{} `json:"data"`
			} `json:"display"`
		} `json:"details"`
		ResourceId int `json:"resource_id"`
	} `json:"data"`
}

func (e *ErrorWoo) Error() string {
	return fmt.Sprintf("code:%s; message:%s; status:%d; display:%s; details:%s;",
		e.Code,
		e.Message,
		e.Data.Status,
		e.Data.Params.Display,
		e.Data.Details.Display.Message,
	)
}

// NotFound reports an unknown product or variation id
func (e *ErrorWoo) NotFound() bool {
	switch e.Code {
	case "woocommerce_rest_product_invalid_id", "woocommerce_rest_invalid_product_id", "rest_no_route":
		return true
	}
	return e.Data.Status == http.StatusNotFound
}
