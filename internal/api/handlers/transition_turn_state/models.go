package transition_turn_state

// TransitionStateRequest HTTP request model
type TransitionStateRequest struct {
	State string `json:"state"`
}

// IllegalTransitionResponse 409 с парой состояний, которую запрещает граф переходов
type IllegalTransitionResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	From    string `json:"from"`
	To      string `json:"to"`
}
