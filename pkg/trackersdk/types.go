package trackersdk

// LoginRequest is the body of POST /api/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse is the success payload of POST /api/login.
type LoginResponse struct {
	// Token is the JWT used to authenticate subsequent requests.
	Token string `json:"token"`

	// UserType is the role baked into the token, "admin" or "client".
	UserType string `json:"userType"`

	// UserID is the login identity's id.
	UserID string `json:"userId"`
}

// CreateClientRequest is the body of POST /api/clients.
type CreateClientRequest struct {
	Username    string `json:"username"`
	Password    string `json:"password"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	DateOfBirth string `json:"dateOfBirth"`
}

// CreateClientResponse is the success payload of POST /api/clients.
type CreateClientResponse struct {
	ClientID string `json:"clientId"`
	UserID   string `json:"userId"`
}

// ClientInfo is one client profile as returned by the listing and
// self-service endpoints.
type ClientInfo struct {
	ID          string `json:"id"`
	UserID      string `json:"userId"`
	Username    string `json:"username"`
	Name        string `json:"name"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	DateOfBirth string `json:"dateOfBirth"`
	CreatedAt   string `json:"createdAt"`
}

// DeleteClientResponse is the success payload of DELETE /api/clients/{id}.
type DeleteClientResponse struct {
	Message string `json:"message"`
}

// LogFoodRequest is the body of POST /api/food-consumption.
type LogFoodRequest struct {
	FoodItem string `json:"foodItem"`
	Quantity string `json:"quantity"`
	Date     string `json:"date"`
}

// FoodEntry is one logged consumption record.
type FoodEntry struct {
	ID       string `json:"id"`
	ClientID string `json:"clientId"`
	FoodItem string `json:"foodItem"`
	Quantity string `json:"quantity"`
	Date     string `json:"date"`
}

// ProtectedResponse is the payload of GET /protected, echoing the
// authenticated identity.
type ProtectedResponse struct {
	UserID   string `json:"userId"`
	Role     string `json:"role"`
	Username string `json:"username"`
}

// HealthResponse is the payload of the /livez and /readyz probes.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks reports the state of each critical dependency.
type HealthChecks struct {
	Database string `json:"database"`
}

// errorResponse is the wire shape of every error body.
type errorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}
