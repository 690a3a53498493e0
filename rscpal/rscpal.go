// Package rscpal implements the RSCP application layer protocol.
//
// This package provides a complete implementation of RSCP (Remote Storage
// Control Protocol), the tagged binary protocol spoken by E3/DC home energy
// storage controllers over the local network.
//
// The package supports:
//   - The full tagged value system including nested containers
//   - Frames with timestamps and CRC-32 trailers
//   - Rijndael 256 bit CBC ciphering with chained initialisation vectors
//   - Username and password authentication with user levels
//
// Basic usage:
//
//	// Create settings
//	settings := rscpal.NewSettings("rscpkey", "user@example.com", "password")
//
//	// Create transport
//	transport := tcp.New("192.168.1.100", base.DefaultPort, 30*time.Second)
//
//	// Create RSCP client and log in
//	client := rscpal.New(transport, settings)
//	err := client.Open()
//
//	// Query the battery state of charge
//	rsp, err := client.SendReceive(rscpal.Request(tags.EmsBatSOC))
//	var soc byte
//	err = rsp.CastValue(tags.EmsBatSOC, &soc)
package rscpal

import (
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hausenergie/librscp-go/base"
	"github.com/hausenergie/librscp-go/ciphering"
	"go.uber.org/zap"
)

const defaultmaxreceive = 128 * 1024

type Client interface {
	Close() error
	Disconnect() error
	Connect() error
	Authenticate() (base.UserLevel, error)
	Open() error
	SetLogger(logger *zap.SugaredLogger)
	SendReceiveFrame(req *Frame) (*Frame, error)
	SendReceive(items ...Item) (*Frame, error)
	UserLevel() base.UserLevel
	IsOpen() bool
}

type connstate byte

const (
	stateclosed connstate = iota
	stateconnected
	stateauthenticated
	statefailed
)

type rscpaltransport struct {
	isopen    bool // this is now handled outside
	transport base.Stream
}

func (rt *rscpaltransport) Read(p []byte) (n int, err error) {
	n, err = rt.transport.Read(p)
	if err != nil && !errors.Is(err, io.EOF) {
		rt.isopen = false
	}
	return
}

func (rt *rscpaltransport) Close() error {
	return rt.transport.Close()
}

func (rt *rscpaltransport) Open() error {
	return rt.transport.Open()
}

func (rt *rscpaltransport) Disconnect() error {
	return rt.transport.Disconnect()
}

func (rt *rscpaltransport) SetLogger(logger *zap.SugaredLogger) {
	rt.transport.SetLogger(logger)
}

func (rt *rscpaltransport) SetDeadline(t time.Time) {
	rt.transport.SetDeadline(t)
}

func (rt *rscpaltransport) SetMaxReceivedBytes(m int64) {
	rt.transport.SetMaxReceivedBytes(m)
}

func (rt *rscpaltransport) Write(src []byte) (err error) {
	err = rt.transport.Write(src)
	if err != nil {
		rt.isopen = false // forcibly close during malfunction
	}
	return
}

type rscpal struct {
	transport *rscpaltransport
	logger    *zap.SugaredLogger
	settings  *Settings
	cipher    *ciphering.Cipher
	state     connstate
	level     base.UserLevel
	connid    string
	mtx       sync.Mutex
}

// Settings contains the configuration parameters for RSCP communication.
type Settings struct {
	ResponseTimeout   time.Duration // deadline for a whole request and response exchange, zero leaves it to the transport
	MaxReceiveSize    int64         // upper bound for a single response frame
	ShowSecuredValues bool          // force to show secured values in logs, dangerous, debug purpose only !!!

	// private part
	key      string
	username string
	password string
}

// NewSettings creates RSCP settings from the three credentials every portal
// account has, the locally configured encryption key plus the portal username
// and password.
func NewSettings(key string, username string, password string) *Settings {
	return &Settings{
		ResponseTimeout: 0,
		MaxReceiveSize:  0,
		key:             key,
		username:        username,
		password:        password,
	}
}

// New creates a new RSCP application layer client with the specified transport and settings.
func New(transport base.Stream, settings *Settings) Client {
	if settings.MaxReceiveSize <= 0 {
		settings.MaxReceiveSize = defaultmaxreceive
	}
	return &rscpal{
		transport: &rscpaltransport{
			isopen:    false,
			transport: transport,
		},
		logger:   nil,
		settings: settings,
		state:    stateclosed,
		level:    base.UserLevelNotAuthorized,
	}
}

func (d *rscpal) logf(format string, v ...any) {
	if d.logger != nil {
		d.logger.Infof(format, v...)
	}
}

func (d *rscpal) dlogf(format string, v ...any) {
	if d.logger != nil {
		d.logger.Debugf(format, v...)
	}
}

func (d *rscpal) logstate(st bool) bool {
	if d.settings.ShowSecuredValues {
		return false
	}
	if st {
		d.transport.SetLogger(d.logger)
	} else {
		d.logf("Temporarily suppressing logs due to packet with confidential content")
		d.transport.SetLogger(nil)
	}
	return true
}

// Connect opens the transport and prepares a fresh cipher for the session.
// Authentication is a separate step, see Authenticate or Open.
func (d *rscpal) Connect() error {
	d.mtx.Lock()
	defer d.mtx.Unlock()

	switch d.state {
	case stateconnected, stateauthenticated:
		return nil
	case statefailed:
		return fmt.Errorf("session has failed, disconnect first")
	}
	c, err := ciphering.New(d.settings.key)
	if err != nil {
		return err
	}
	if err = d.transport.Open(); err != nil {
		return err
	}
	d.cipher = c
	d.connid = uuid.NewString()
	d.level = base.UserLevelNotAuthorized
	d.transport.isopen = true
	d.state = stateconnected
	d.logf("Connected to controller, session %s", d.connid)
	return nil
}

// Open connects and authenticates in one go. A refused login tears the
// connection down again.
func (d *rscpal) Open() error {
	if err := d.Connect(); err != nil {
		return err
	}
	if _, err := d.Authenticate(); err != nil {
		_ = d.Disconnect()
		return err
	}
	return nil
}

// Disconnect drops the link without any farewell message, the protocol has
// none. Safe to call in any state.
func (d *rscpal) Disconnect() error {
	d.mtx.Lock()
	defer d.mtx.Unlock()
	return d.teardown()
}

// Close is Disconnect under the usual name, nothing has to be said to the
// controller when hanging up.
func (d *rscpal) Close() error {
	d.mtx.Lock()
	defer d.mtx.Unlock()
	return d.teardown()
}

func (d *rscpal) teardown() error {
	d.state = stateclosed
	d.level = base.UserLevelNotAuthorized
	d.cipher = nil
	d.transport.isopen = false
	return d.transport.Disconnect()
}

func (d *rscpal) fail() {
	d.state = statefailed
	d.transport.isopen = false
}

func (d *rscpal) IsOpen() bool {
	d.mtx.Lock()
	defer d.mtx.Unlock()
	return d.transport.isopen && (d.state == stateconnected || d.state == stateauthenticated)
}

// UserLevel reports the access level granted by the last authentication.
func (d *rscpal) UserLevel() base.UserLevel {
	d.mtx.Lock()
	defer d.mtx.Unlock()
	return d.level
}

// SendReceiveFrame ciphers and sends req and waits for the single answer
// frame. Exchanges are serialized, the protocol has no means to pair
// concurrent requests with their answers. A connection is enough, the
// authentication tag itself and the basic info tags answer before any
// level is granted.
func (d *rscpal) SendReceiveFrame(req *Frame) (*Frame, error) {
	d.mtx.Lock()
	defer d.mtx.Unlock()

	if d.state != stateconnected && d.state != stateauthenticated {
		return nil, fmt.Errorf("session is not connected")
	}
	return d.exchangeframe(req, true)
}

// SendReceive wraps the items into a frame stamped now and exchanges it.
func (d *rscpal) SendReceive(items ...Item) (*Frame, error) {
	return d.SendReceiveFrame(NewFrame(items...))
}

func (d *rscpal) SetLogger(logger *zap.SugaredLogger) {
	d.logger = logger
	d.transport.SetLogger(logger)
}
