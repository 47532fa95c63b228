package fhir

import (
	"context"
	"fmt"
	"io"
	"medbridge-service/internal/app/config"
	"medbridge-service/internal/app/contracts"
	"medbridge-service/internal/pkg/constvars"
	"medbridge-service/internal/pkg/dto/requests"
	"medbridge-service/internal/pkg/exceptions"
	"medbridge-service/internal/pkg/fhir_dto"
	"medbridge-service/internal/pkg/utils"
	"net/http"
	"net/url"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// patientFhirAdapter talks to a real FHIR R4 vendor endpoint. Transport
// errors and 5xx responses are retried with a fixed delay; 4xx responses
// are not.
type patientFhirAdapter struct {
	BaseUrl        string
	APIKey         string
	Retries        int
	RetryDelay     time.Duration
	RequestTimeout time.Duration
	Client         *http.Client
	Log            *zap.Logger
}

func NewPatientFhirAdapter(internalConfig *config.InternalConfig, logger *zap.Logger) contracts.PatientAdapter {
	return &patientFhirAdapter{
		BaseUrl:        internalConfig.Adapter.BaseUrl + "/" + constvars.ResourcePatient,
		APIKey:         internalConfig.Adapter.APIKey,
		Retries:        internalConfig.Adapter.Retries,
		RetryDelay:     time.Duration(internalConfig.Adapter.RetryDelayInMs) * time.Millisecond,
		RequestTimeout: time.Duration(internalConfig.Adapter.TimeoutInSecond) * time.Second,
		Client:         &http.Client{},
		Log:            logger,
	}
}

func (c *patientFhirAdapter) SearchPatients(ctx context.Context, criteria *requests.SearchPatients) ([]fhir_dto.Patient, error) {
	requestID := utils.RequestIDFromContext(ctx)
	c.Log.Info("patientFhirAdapter.SearchPatients called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	searchUrl := c.BaseUrl
	if criteria != nil && !criteria.IsEmpty() {
		params := url.Values{}
		if criteria.Name != "" {
			params.Set(constvars.FhirSearchParamName, criteria.Name)
		}
		if criteria.BirthDate != "" {
			params.Set(constvars.FhirSearchParamBirthdate, criteria.BirthDate)
		}
		if criteria.Gender != "" {
			params.Set(constvars.FhirSearchParamGender, criteria.Gender)
		}
		if encoded := params.Encode(); encoded != "" {
			searchUrl += "?" + encoded
		}
	}

	resp, err := c.doWithRetry(ctx, searchUrl)
	if err != nil {
		c.Log.Error("patientFhirAdapter.SearchPatients request failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		return nil, c.outcomeError(resp, requestID, exceptions.ErrSearchFHIRResource)
	}

	var bundle fhir_dto.FHIRBundle
	err = json.NewDecoder(resp.Body).Decode(&bundle)
	if err != nil {
		c.Log.Error("patientFhirAdapter.SearchPatients error decoding bundle",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourcePatient)
	}

	patients := make([]fhir_dto.Patient, 0, len(bundle.Entry))
	for _, entry := range bundle.Entry {
		var patient fhir_dto.Patient
		err = json.Unmarshal(entry.Resource, &patient)
		if err != nil {
			c.Log.Error("patientFhirAdapter.SearchPatients error decoding entry",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, exceptions.ErrDecodeResponse(err, constvars.ResourcePatient)
		}
		patients = append(patients, patient)
	}

	c.Log.Info("patientFhirAdapter.SearchPatients succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingPatientCountKey, len(patients)),
	)
	return patients, nil
}

func (c *patientFhirAdapter) FindPatientByID(ctx context.Context, patientID string) (*fhir_dto.Patient, error) {
	requestID := utils.RequestIDFromContext(ctx)
	c.Log.Info("patientFhirAdapter.FindPatientByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	resp, err := c.doWithRetry(ctx, fmt.Sprintf("%s/%s", c.BaseUrl, url.PathEscape(patientID)))
	if err != nil {
		c.Log.Error("patientFhirAdapter.FindPatientByID request failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == constvars.StatusNotFound {
		c.Log.Error("patientFhirAdapter.FindPatientByID patient not found",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPatientIDKey, patientID),
		)
		return nil, exceptions.ErrPatientNotFound(nil, patientID)
	}
	if resp.StatusCode != constvars.StatusOK {
		return nil, c.outcomeError(resp, requestID, exceptions.ErrGetFHIRResource)
	}

	patientFhir := new(fhir_dto.Patient)
	err = json.NewDecoder(resp.Body).Decode(&patientFhir)
	if err != nil {
		c.Log.Error("patientFhirAdapter.FindPatientByID error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourcePatient)
	}

	c.Log.Info("patientFhirAdapter.FindPatientByID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientFhir.ID),
	)
	return patientFhir, nil
}

// doWithRetry issues a GET with the configured per-attempt timeout.
// Transport errors and 5xx responses consume an attempt; any other
// response is returned to the caller as-is.
func (c *patientFhirAdapter) doWithRetry(ctx context.Context, requestUrl string) (*http.Response, error) {
	requestID := utils.RequestIDFromContext(ctx)
	attempts := c.Retries + 1

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		attemptCtx, cancel := context.WithTimeout(ctx, c.RequestTimeout)

		req, err := http.NewRequestWithContext(attemptCtx, constvars.MethodGet, requestUrl, nil)
		if err != nil {
			cancel()
			return nil, exceptions.ErrCreateHTTPRequest(err)
		}
		req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationFHIRJSON)
		req.Header.Set(constvars.HeaderAPIKey, c.APIKey)

		resp, err := c.Client.Do(req)
		if err == nil && resp.StatusCode < constvars.StatusInternalServerError {
			// cancel released on body close by the caller
			resp.Body = &cancelReadCloser{ReadCloser: resp.Body, cancel: cancel}
			return resp, nil
		}

		if err != nil {
			lastErr = err
		} else {
			io.Copy(io.Discard, resp.Body)
			resp.Body.Close()
			lastErr = fmt.Errorf("vendor responded with status %d", resp.StatusCode)
		}
		cancel()

		c.Log.Warn("patientFhirAdapter retrying vendor request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingAttemptKey, attempt),
			zap.Error(lastErr),
		)

		if attempt < attempts {
			timer := time.NewTimer(c.RetryDelay)
			select {
			case <-ctx.Done():
				timer.Stop()
				return nil, exceptions.ErrServerDeadlineExceeded(ctx.Err())
			case <-timer.C:
			}
		}
	}

	return nil, exceptions.ErrVendorRetriesExhausted(lastErr, attempts)
}

func (c *patientFhirAdapter) outcomeError(resp *http.Response, requestID string, build func(error, string) *exceptions.CustomError) error {
	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return build(err, constvars.ResourcePatient)
	}

	var outcome fhir_dto.OperationOutcome
	err = json.Unmarshal(bodyBytes, &outcome)
	if err == nil && len(outcome.Issue) > 0 {
		fhirErrorIssue := fmt.Errorf("%s", outcome.Issue[0].Diagnostics)
		c.Log.Error("patientFhirAdapter FHIR error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(fhirErrorIssue),
		)
		return build(fhirErrorIssue, constvars.ResourcePatient)
	}
	return build(fmt.Errorf("vendor responded with status %d", resp.StatusCode), constvars.ResourcePatient)
}

type cancelReadCloser struct {
	io.ReadCloser
	cancel context.CancelFunc
}

func (c *cancelReadCloser) Close() error {
	err := c.ReadCloser.Close()
	c.cancel()
	return err
}
