package vault

import (
	"github.com/iov-one/bridge/gconf"
)

func gconfSave(db gconf.Store, conf *Configuration) error {
	return gconf.Save(db, packageName, conf)
}
