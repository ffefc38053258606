package dummyserial

import log "github.com/sirupsen/logrus"

// Log is the package logger. Port traffic is logged at debug level, raise it
// to watch the conversation:
//
//	dummyserial.Log.SetLevel(logrus.DebugLevel)
var Log = log.New()
