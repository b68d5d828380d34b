package retry

import (
	"context"
	"fmt"
	"time"
)

// Action defines the prototype of action function, function as a value
type Action func(attempt uint) error

// Model defines the schema, contains all the attributes need for retry
type Model struct {
	retry    uint
	waitTime time.Duration
	stopOn   func(error) bool
}

// Times is used to define the retry count
// it will run if the instance of model is not present before
func Times(retry uint) *Model {
	model := Model{}
	return model.Times(retry)
}

// Times is used to define the retry count
// it will run if the instance of model is already present
func (model *Model) Times(retry uint) *Model {
	model.retry = retry
	return model
}

// Wait is used to define the wait duration after each iteration of retry
// it will run if the instance of model is not present before
func Wait(waitTime time.Duration) *Model {
	model := Model{}
	return model.Wait(waitTime)
}

// Wait is used to define the wait duration after each iteration of retry
// it will run if the instance of model is already present
func (model *Model) Wait(waitTime time.Duration) *Model {
	model.waitTime = waitTime
	return model
}

// StopOn registers a predicate for errors that must not be retried,
// e.g. authorization failures that will never succeed on a later attempt
func (model *Model) StopOn(stop func(error) bool) *Model {
	model.stopOn = stop
	return model
}

// Try is used to run a action with retries and some delay after each iteration
func (model Model) Try(action Action) error {
	return model.TryWithContext(context.Background(), action)
}

// TryWithContext runs the action with retries, giving up early once ctx is done.
// The wait only happens between attempts, never after the last one.
func (model Model) TryWithContext(ctx context.Context, action Action) error {
	if action == nil {
		return fmt.Errorf("no action specified")
	}

	var err error
	for attempt := uint(0); (attempt == 0 || err != nil) && attempt < model.retry; {
		err = action(attempt)
		if err == nil || (model.stopOn != nil && model.stopOn(err)) {
			return err
		}
		attempt++
		if attempt >= model.retry {
			break
		}
		select {
		case <-ctx.Done():
			return err
		case <-time.After(model.waitTime):
		}
	}

	return err
}
