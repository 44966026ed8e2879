package context

import (
	"golang.org/x/net/context"

	"github.com/octabyte/smartsaas-go/models"
)

func GetUserFromContext(ctx context.Context) (models.User, bool) {
	user, ok := ctx.Value("requestUser").(models.User)
	return user, ok
}
