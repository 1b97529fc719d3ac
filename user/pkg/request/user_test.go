package request

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoginMarshalMasksPassword(t *testing.T) {
	expectedMap := map[string]string{"email": "email", "password": "***"}
	expected, _ := json.Marshal(expectedMap)
	loginReq := Login{Email: "email", Password: "password"}

	actual, _ := json.Marshal(loginReq)

	assert.EqualValues(t, expected, actual)
	assert.EqualValues(t, "password", loginReq.Password)
}

func TestRegisterMarshalMasksPassword(t *testing.T) {
	registerReq := Register{
		Email:     "email",
		Password:  "password",
		FirstName: "first",
		LastName:  "last",
	}

	actual, _ := json.Marshal(registerReq)

	assert.NotContains(t, string(actual), "password\":\"password")
	assert.Contains(t, string(actual), "***")
	assert.EqualValues(t, "password", registerReq.Password)
}
