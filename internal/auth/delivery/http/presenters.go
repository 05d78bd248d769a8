package http

import "smart-task-planner/internal/auth"

type callbackReq struct {
	State string `form:"state"`
	Code  string `form:"code"`
	Error string `form:"error"`
}

func (r callbackReq) toInput() auth.CallbackInput {
	return auth.CallbackInput{
		State: r.State,
		Code:  r.Code,
		Error: r.Error,
	}
}

type statusResp struct {
	Authenticated bool   `json:"authenticated"`
	Mode          string `json:"mode"`
	LoginURL      string `json:"login_url,omitempty"`
}

func (h *handler) newStatusResp(out auth.StatusOutput) statusResp {
	resp := statusResp{
		Authenticated: out.Authenticated,
		Mode:          string(out.Mode),
	}
	if out.LoginEnabled && !out.Authenticated {
		resp.LoginURL = loginPath
	}
	return resp
}
