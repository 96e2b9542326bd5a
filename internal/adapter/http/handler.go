package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"resume-builder/internal/domain"
	"resume-builder/internal/model"
	"resume-builder/internal/usecase"
	infra "resume-builder/pkg/infrastructure"
	"resume-builder/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
)

type Handler struct {
	editor *usecase.Editor
	docs   *usecase.Documents
	log    logger.Logger
}

func NewHandler(editor *usecase.Editor, docs *usecase.Documents, log logger.Logger) *Handler {
	if log == nil {
		log = logger.Nop()
	}
	return &Handler{editor: editor, docs: docs, log: log.Named("http")}
}

// fail writes err as {"error": msg} with the status its sentinel maps to.
func (h *Handler) fail(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, domain.ErrBusy):
		status = fiber.StatusConflict
	case errors.Is(err, domain.ErrConfirmationRequired):
		status = fiber.StatusPreconditionFailed
	case errors.Is(err, domain.ErrStorageFull):
		status = fiber.StatusInsufficientStorage
	case errors.Is(err, usecase.ErrUnknownField), errors.Is(err, usecase.ErrUnknownSection):
		status = fiber.StatusBadRequest
	}
	if status == fiber.StatusInternalServerError {
		h.log.Error(c.UserContext(), "request failed", logger.String("path", c.Path()), logger.Error(err))
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
}

func confirmed(c *fiber.Ctx) bool {
	return c.QueryBool("confirm", false)
}

func (h *Handler) GetDraft(c *fiber.Ctx) error {
	return c.JSON(h.editor.Draft())
}

func (h *Handler) GetStatus(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": h.editor.SaveStatus()})
}

func (h *Handler) PatchDraft(c *fiber.Ctx) error {
	var edits []usecase.FieldEdit
	if err := c.BodyParser(&edits); err != nil {
		return badRequest(c, "invalid payload")
	}
	if err := h.editor.Apply(edits...); err != nil {
		return h.fail(c, err)
	}
	return c.JSON(h.editor.Draft())
}

func (h *Handler) NewResume(c *fiber.Ctx) error {
	if !confirmed(c) {
		return h.fail(c, domain.ErrConfirmationRequired)
	}
	fresh, err := h.editor.NewResume(c.UserContext())
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fresh)
}

func (h *Handler) Submit(c *fiber.Ctx) error {
	sub, err := h.editor.Submit(c.UserContext())
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(sub)
}

func (h *Handler) AddRecord(c *fiber.Ctx) error {
	section, err := usecase.ParseSection(c.Params("section"))
	if err != nil {
		return h.fail(c, err)
	}
	id, err := h.editor.Add(section)
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": id})
}

func (h *Handler) UpdateRecord(c *fiber.Ctx) error {
	section, err := usecase.ParseSection(c.Params("section"))
	if err != nil {
		return h.fail(c, err)
	}
	// Params aliases the request buffer; the id outlives the request.
	id := utils.CopyString(c.Params("id"))
	body := c.Body()

	switch section {
	case usecase.SectionExperiences:
		var v model.Experience
		if err = json.Unmarshal(body, &v); err == nil {
			v.ID = id
			err = h.editor.UpdateExperience(v)
		}
	case usecase.SectionEducation:
		var v model.Education
		if err = json.Unmarshal(body, &v); err == nil {
			v.ID = id
			err = h.editor.UpdateEducation(v)
		}
	case usecase.SectionProjects:
		var v model.Project
		if err = json.Unmarshal(body, &v); err == nil {
			v.ID = id
			err = h.editor.UpdateProject(v)
		}
	case usecase.SectionCertifications:
		var v model.Certification
		if err = json.Unmarshal(body, &v); err == nil {
			v.ID = id
			err = h.editor.UpdateCertification(v)
		}
	case usecase.SectionReferences:
		var v model.Reference
		if err = json.Unmarshal(body, &v); err == nil {
			v.ID = id
			err = h.editor.UpdateReference(v)
		}
	}
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) {
		return badRequest(c, "invalid payload")
	}
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(h.editor.Draft())
}

func (h *Handler) RemoveRecord(c *fiber.Ctx) error {
	section, err := usecase.ParseSection(c.Params("section"))
	if err != nil {
		return h.fail(c, err)
	}
	if err := h.editor.Remove(section, c.Params("id")); err != nil {
		return h.fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) Preview(c *fiber.Ctx) error {
	doc, err := h.docs.HTML(h.editor.Draft())
	if err != nil {
		return h.fail(c, err)
	}
	c.Type("html", "utf-8")
	return c.SendString(doc.HTML)
}

func (h *Handler) PDF(c *fiber.Ctx) error {
	draft := h.editor.Draft()
	b, err := h.docs.PDF(c.UserContext(), draft)
	if err != nil {
		return h.fail(c, err)
	}
	c.Type("pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="resume_%s.pdf"`, draft.ID))
	return c.Send(b)
}

// UploadJobDescription accepts a multipart "file" (pdf, docx, txt or md) or
// a JSON body {"text": "..."} and stores its text as the job description.
func (h *Handler) UploadJobDescription(c *fiber.Ctx) error {
	var text string
	if fh, err := c.FormFile("file"); err == nil {
		f, err := fh.Open()
		if err != nil {
			return badRequest(c, "unreadable upload")
		}
		defer f.Close()
		data, err := io.ReadAll(f)
		if err != nil {
			return badRequest(c, "unreadable upload")
		}
		text, err = infra.ExtractText(fh.Filename, data)
		if err != nil {
			return badRequest(c, err.Error())
		}
	} else {
		var req struct {
			Text string `json:"text"`
		}
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "expected a file upload or a text body")
		}
		text = req.Text
	}
	h.editor.SetJobDescription(text)
	return c.JSON(h.editor.Draft())
}

func (h *Handler) EnhanceSummary(c *fiber.Ctx) error {
	d, err := h.editor.EnhanceSummary(c.UserContext())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(d)
}

func (h *Handler) EnhanceExperience(c *fiber.Ctx) error {
	d, err := h.editor.EnhanceExperience(c.UserContext(), c.Params("id"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(d)
}

func (h *Handler) AnalyzeCompatibility(c *fiber.Ctx) error {
	d, err := h.editor.AnalyzeCompatibility(c.UserContext())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(d)
}

func (h *Handler) ListSubmissions(c *fiber.Ctx) error {
	return c.JSON(h.editor.SearchSubmissions(c.Query("q")))
}

func (h *Handler) ExportSubmissions(c *fiber.Ctx) error {
	exp, err := h.editor.ExportSubmissions()
	if err != nil {
		return h.fail(c, err)
	}
	c.Type("json")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, exp.FileName))
	return c.Send(exp.Body)
}

func (h *Handler) ImportSubmissions(c *fiber.Ctx) error {
	list, err := model.ValidateSubmissions(c.Body())
	if err != nil {
		return badRequest(c, err.Error())
	}
	if err := h.editor.RestoreSubmissions(c.UserContext(), list); err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"count": len(list)})
}

func (h *Handler) LoadSubmission(c *fiber.Ctx) error {
	d, err := h.editor.LoadSubmission(c.Params("id"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(d)
}

func (h *Handler) DeleteSubmission(c *fiber.Ctx) error {
	if !confirmed(c) {
		return h.fail(c, domain.ErrConfirmationRequired)
	}
	if err := h.editor.DeleteSubmission(c.UserContext(), c.Params("id")); err != nil {
		return h.fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
